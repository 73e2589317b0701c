package vga

// Framebuffer is the memory-mapped text buffer. Stores go straight to the
// hardware and are never cached, merged or dropped by the compiler.
type Framebuffer struct {
	base uintptr
}

// NewFramebuffer returns the framebuffer mapped at PhysAddr.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{base: PhysAddr}
}

// StoreByte implements Surface.
//
//go:nosplit
func (fb *Framebuffer) StoreByte(off int, b byte) {
	storeByte(fb.base+uintptr(off), b)
}

// Len implements Surface.
func (fb *Framebuffer) Len() int { return WindowSize }
