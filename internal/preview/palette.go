// Package preview renders a text-mode page on the host: as colored terminal
// output, as an image, or in a window.
package preview

import (
	"image/color"

	"github.com/cafeos/cafeos/internal/vga"
)

// dac holds the default 16-color DAC entries as 6-bit components.
var dac = [16][3]uint8{
	{0, 0, 0},    // Black
	{0, 0, 42},   // Blue
	{0, 42, 0},   // Green
	{0, 42, 42},  // Cyan
	{42, 0, 0},   // Red
	{42, 0, 42},  // Magenta
	{42, 21, 0},  // Brown
	{42, 42, 42}, // Light grey
	{21, 21, 21}, // Dark grey
	{21, 21, 63}, // Light blue
	{21, 63, 21}, // Light green
	{21, 63, 63}, // Light cyan
	{63, 21, 21}, // Light red
	{63, 21, 63}, // Light magenta
	{63, 63, 21}, // Yellow
	{63, 63, 63}, // White
}

func expand6(v uint8) uint8 {
	return v<<2 | v>>4
}

// RGBA returns the on-screen color of c.
func RGBA(c vga.Color) color.RGBA {
	e := dac[c&0xf]
	return color.RGBA{R: expand6(e[0]), G: expand6(e[1]), B: expand6(e[2]), A: 0xff}
}

// printable maps a character code to something every renderer can draw.
func printable(ch byte) byte {
	if ch < 0x20 || ch > 0x7e {
		return '.'
	}
	return ch
}
