package preview

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/cafeos/cafeos/internal/vga"
)

// ANSI writes a page as text, one line per row.
type ANSI struct {
	// Color emits 24-bit SGR escapes for every attribute change.
	Color bool
}

// ForTerminal picks ANSI settings for the file descriptor fd and reports
// how many columns the terminal has (0 when fd is not a terminal).
func ForTerminal(fd int) (ANSI, int) {
	if !term.IsTerminal(fd) {
		return ANSI{}, 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return ANSI{Color: true}, 0
	}
	return ANSI{Color: true}, cols
}

// Render writes page to w.
func (a ANSI) Render(w io.Writer, page []byte) error {
	if len(page) < vga.PageSize {
		return fmt.Errorf("preview: page is %d bytes, want %d", len(page), vga.PageSize)
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < vga.Height; row++ {
		last := -1
		for col := 0; col < vga.Width; col++ {
			off := vga.Offset(row, col)
			ch, attr := page[off], vga.Attr(page[off+1])
			if a.Color && int(attr) != last {
				fg, bg := RGBA(attr.Foreground()), RGBA(attr.Background())
				fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm", fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
				last = int(attr)
			}
			bw.WriteByte(printable(ch))
		}
		if a.Color {
			bw.WriteString("\x1b[0m")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
