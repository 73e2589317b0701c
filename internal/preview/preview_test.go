package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/cafeos/cafeos/internal/kmain"
	"github.com/cafeos/cafeos/internal/vga"
)

func bootedPage(t *testing.T) []byte {
	t.Helper()
	var b vga.Buffer
	kmain.Prepare(&b, kmain.Options{})
	return b.Page()
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		c    vga.Color
		want color.RGBA
	}{
		{vga.Black, color.RGBA{0, 0, 0, 255}},
		{vga.Blue, color.RGBA{0, 0, 170, 255}},
		{vga.Brown, color.RGBA{170, 85, 0, 255}},
		{vga.Yellow, color.RGBA{255, 255, 85, 255}},
		{vga.White, color.RGBA{255, 255, 255, 255}},
	}
	for _, tc := range tests {
		if got := RGBA(tc.c); got != tc.want {
			t.Fatalf("RGBA(%d) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestANSI_Plain(t *testing.T) {
	var out bytes.Buffer
	if err := (ANSI{}).Render(&out, bootedPage(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != vga.Height {
		t.Fatalf("got %d lines, want %d", len(lines), vga.Height)
	}
	if got := strings.TrimSpace(lines[kmain.MessageRow]); got != kmain.Message {
		t.Fatalf("banner line = %q", got)
	}
	if !strings.HasPrefix(lines[kmain.MessageRow], strings.Repeat(" ", kmain.MessageCol)+"C") {
		t.Fatalf("banner starts at the wrong column: %q", lines[kmain.MessageRow])
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatal("plain output contains escapes")
	}
}

func TestANSI_Color(t *testing.T) {
	var out bytes.Buffer
	if err := (ANSI{Color: true}).Render(&out, bootedPage(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	s := out.String()
	for _, want := range []string{
		"\x1b[38;2;255;255;85m\x1b[48;2;0;0;170m",  // yellow on blue
		"\x1b[38;2;255;255;255m\x1b[48;2;0;0;170m", // white on blue
		"\x1b[0m\n",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output is missing %q", want)
		}
	}
}

func TestANSI_ShortPage(t *testing.T) {
	if err := (ANSI{}).Render(&bytes.Buffer{}, make([]byte, 10)); err == nil {
		t.Fatal("expected an error for a short page")
	}
}

func TestForTerminal_NotATerminal(t *testing.T) {
	a, cols := ForTerminal(-1)
	if a.Color || cols != 0 {
		t.Fatalf("ForTerminal(-1) = %+v, %d", a, cols)
	}
}

func TestImage(t *testing.T) {
	page := bootedPage(t)

	img, err := Image(page, 1)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != vga.Width*CellWidth || b.Dy() != vga.Height*CellHeight {
		t.Fatalf("bounds = %v", b)
	}
	blue := RGBA(vga.Blue)
	if got := img.RGBAAt(0, 0); got != blue {
		t.Fatalf("pixel (0,0) = %v, want %v", got, blue)
	}

	// The banner's 'C' must put some white pixels in its cell.
	white := RGBA(vga.White)
	x0, y0 := kmain.MessageCol*CellWidth, kmain.MessageRow*CellHeight
	found := false
	for y := y0; y < y0+CellHeight && !found; y++ {
		for x := x0; x < x0+CellWidth; x++ {
			if img.RGBAAt(x, y) == white {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("no foreground pixels in the first banner cell")
	}
}

func TestImage_Scale(t *testing.T) {
	img, err := Image(bootedPage(t), 2)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2*vga.Width*CellWidth || b.Dy() != 2*vga.Height*CellHeight {
		t.Fatalf("bounds = %v", b)
	}
}

func TestPNG(t *testing.T) {
	var out bytes.Buffer
	if err := PNG(&out, bootedPage(t), 1); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != vga.Width*CellWidth {
		t.Fatalf("decoded width = %d", b.Dx())
	}
}
