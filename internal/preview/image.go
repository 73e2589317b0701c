package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cafeos/cafeos/internal/vga"
)

const (
	// CellWidth and CellHeight are the pixel size of a character cell at
	// scale 1, matching the 720x400 text mode's 8x16 glyph box.
	CellWidth  = 8
	CellHeight = 16
)

// Image rasterizes page. scale values below 1 are treated as 1.
func Image(page []byte, scale int) (*image.RGBA, error) {
	if len(page) < vga.PageSize {
		return nil, fmt.Errorf("preview: page is %d bytes, want %d", len(page), vga.PageSize)
	}
	if scale < 1 {
		scale = 1
	}

	face := basicfont.Face7x13
	top := (CellHeight - face.Height) / 2
	img := image.NewRGBA(image.Rect(0, 0, vga.Width*CellWidth, vga.Height*CellHeight))
	d := &font.Drawer{Dst: img, Face: face}

	for row := 0; row < vga.Height; row++ {
		for col := 0; col < vga.Width; col++ {
			off := vga.Offset(row, col)
			ch, attr := page[off], vga.Attr(page[off+1])

			x, y := col*CellWidth, row*CellHeight
			cell := image.Rect(x, y, x+CellWidth, y+CellHeight)
			draw.Draw(img, cell, image.NewUniform(RGBA(attr.Background())), image.Point{}, draw.Src)

			if ch == ' ' || ch == 0 {
				continue
			}
			d.Src = image.NewUniform(RGBA(attr.Foreground()))
			d.Dot = fixed.P(x, y+top+face.Ascent)
			d.DrawString(string(rune(printable(ch))))
		}
	}

	if scale == 1 {
		return img, nil
	}
	b := img.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
	return scaled, nil
}

// PNG writes page to w as a PNG image.
func PNG(w io.Writer, page []byte, scale int) error {
	img, err := Image(page, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}
