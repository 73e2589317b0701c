package vga

// Buffer is an in-memory Surface the size of the text window. It stands in
// for the hardware framebuffer on the host.
type Buffer struct {
	mem    [WindowSize]byte
	stores int
}

// StoreByte implements Surface. Offsets outside the text window panic.
func (b *Buffer) StoreByte(off int, v byte) {
	b.mem[off] = v
	b.stores++
}

// Len implements Surface.
func (b *Buffer) Len() int { return WindowSize }

// Stores returns how many bytes have been written since the buffer was
// created.
func (b *Buffer) Stores() int { return b.stores }

// Byte returns the byte at offset off.
func (b *Buffer) Byte(off int) byte { return b.mem[off] }

// Cell decodes the cell at row, col of the visible page.
func (b *Buffer) Cell(row, col int) Cell {
	off := Offset(row, col)
	return Cell{Char: b.mem[off], Attr: Attr(b.mem[off+1])}
}

// Page returns a copy of the visible page.
func (b *Buffer) Page() []byte {
	page := make([]byte, PageSize)
	copy(page, b.mem[:PageSize])
	return page
}

// Text returns the characters of row as a string.
func (b *Buffer) Text(row int) string {
	line := make([]byte, Width)
	for col := range line {
		line[col] = b.mem[Offset(row, col)]
	}
	return string(line)
}
