// Package vga describes the legacy 80x25 color text-mode display and the
// surfaces the kernel can paint it through.
package vga

const (
	// Width and Height are the text-mode geometry in character cells.
	Width  = 80
	Height = 25

	// Cells is the number of character cells on the visible page.
	Cells = Width * Height

	// PageSize is the size in bytes of the visible page. Each cell is a
	// (character, attribute) byte pair.
	PageSize = Cells * 2

	// PhysAddr is the physical address of the text buffer.
	PhysAddr uintptr = 0xB8000

	// WindowSize is the size of the text window mapped at PhysAddr. The
	// visible page occupies its first PageSize bytes.
	WindowSize = 0x8000
)

// Color is an index into the 16-color text-mode palette.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// Attr is a cell attribute byte: foreground in the low nibble, background
// in the high nibble.
type Attr uint8

// MakeAttr packs a foreground and background color into an attribute byte.
func MakeAttr(fg, bg Color) Attr {
	return Attr(bg&0xf)<<4 | Attr(fg&0xf)
}

// Foreground returns the foreground color of a.
func (a Attr) Foreground() Color { return Color(a & 0xf) }

// Background returns the background color of a.
func (a Attr) Background() Color { return Color(a >> 4) }

// Offset returns the byte offset of the cell at row, col. It performs no
// range checks.
func Offset(row, col int) int {
	return (row*Width + col) * 2
}

// Cell is a decoded character cell.
type Cell struct {
	Char byte
	Attr Attr
}

// Surface is a byte-addressable display memory.
type Surface interface {
	// StoreByte writes b at byte offset off from the start of the surface.
	StoreByte(off int, b byte)

	// Len returns the number of addressable bytes.
	Len() int
}
