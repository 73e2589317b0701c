package main

import (
	"github.com/cafeos/cafeos/internal/cpu"
	"github.com/cafeos/cafeos/internal/kmain"
	"github.com/cafeos/cafeos/internal/vga"
)

// main is entered straight from the loader handoff and never returns.
func main() {
	// fb stores through the physical address of the mapped VGA text buffer.
	fb := vga.NewFramebuffer()

	// clear the screen, print the banner and park the CPU.
	kmain.Boot(fb, &cpu.CPU{}, kmain.Options{})
}
