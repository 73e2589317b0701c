// Package cpu exposes the processor primitives the kernel needs once it has
// nothing left to do.
package cpu

// CPU is the boot processor.
type CPU struct{}

// Idle suspends the processor until the next interrupt. With interrupts
// never enabled this does not return on real hardware.
//
//go:nosplit
func (*CPU) Idle() {
	idle()
}

// Halt stops the processor for good.
//
//go:nosplit
func (*CPU) Halt() {
	halt()
}
