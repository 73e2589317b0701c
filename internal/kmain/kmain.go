// Package kmain holds the first Go code that runs after the loader hands
// off: it paints the boot banner on the text-mode display and parks the CPU.
package kmain

import "github.com/cafeos/cafeos/internal/vga"

const (
	// Message is the boot banner.
	Message = "CafeOS Kernel is now brewing!"

	// MessageRow and MessageCol locate the first banner character.
	MessageRow = 2
	MessageCol = 20

	// ClearChar fills every cell after Clear.
	ClearChar = ' '
)

var (
	// ClearAttr is yellow on blue (0x1E).
	ClearAttr = vga.MakeAttr(vga.Yellow, vga.Blue)

	// MessageAttr is bright white on blue (0x1F).
	MessageAttr = vga.MakeAttr(vga.White, vga.Blue)
)

// Stage is a step of the boot sequence.
type Stage int

const (
	Start Stage = iota
	Cleared
	Rendered
	Halted
)

func (s Stage) String() string {
	switch s {
	case Start:
		return "start"
	case Cleared:
		return "cleared"
	case Rendered:
		return "rendered"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Idler parks the processor between interrupts.
type Idler interface {
	Idle()
}

// Options tune the boot sequence. The zero value reproduces the original
// behavior.
type Options struct {
	// ClipMessage stops the banner at the end of its row instead of letting
	// it run into the next one.
	ClipMessage bool

	// Trace, if set, is called on every stage transition.
	Trace func(Stage)
}

func (o Options) enter(s Stage) {
	if o.Trace != nil {
		o.Trace(s)
	}
}

// Boot clears the display, draws the banner and halts. It never returns.
//
//go:noinline
func Boot(s vga.Surface, idler Idler, opts Options) {
	Prepare(s, opts)
	opts.enter(Halted)
	Halt(idler)
}

// Prepare runs every step of Boot except the final halt.
func Prepare(s vga.Surface, opts Options) {
	opts.enter(Start)

	Clear(s)
	opts.enter(Cleared)

	if opts.ClipMessage {
		RenderClipped(s, MessageRow, MessageCol, Message, MessageAttr)
	} else {
		Render(s, MessageRow, MessageCol, Message, MessageAttr)
	}
	opts.enter(Rendered)
}

// Clear blanks every cell of the visible page with ClearChar on ClearAttr.
func Clear(s vga.Surface) {
	for i := 0; i < vga.Cells; i++ {
		s.StoreByte(2*i, ClearChar)
		s.StoreByte(2*i+1, byte(ClearAttr))
	}
}

// Render writes msg starting at row, col using attr and returns the number
// of cells written. Rendering stops at the end of msg or at a NUL byte.
//
// Nothing is checked against the display geometry: characters past column
// 79 land in the following row, as they do on the hardware.
func Render(s vga.Surface, row, col int, msg string, attr vga.Attr) int {
	off := vga.Offset(row, col)
	n := 0
	for ; n < len(msg) && msg[n] != 0; n++ {
		s.StoreByte(off+n*2, msg[n])
		s.StoreByte(off+n*2+1, byte(attr))
	}
	return n
}

// RenderClipped is Render limited to the cells between col and the end of
// row. Positions outside the visible page draw nothing.
func RenderClipped(s vga.Surface, row, col int, msg string, attr vga.Attr) int {
	if row < 0 || row >= vga.Height || col < 0 || col >= vga.Width {
		return 0
	}
	if room := vga.Width - col; len(msg) > room {
		msg = msg[:room]
	}
	return Render(s, row, col, msg, attr)
}

// Halt parks the processor forever. It does not touch the display.
//
//go:noinline
func Halt(idler Idler) {
	for {
		idler.Idle()
	}
}
