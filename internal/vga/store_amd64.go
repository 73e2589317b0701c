package vga

// storeByte writes b to addr with a single MOVB. Implemented in
// store_amd64.s so the write is always emitted.
//
//go:noescape
//go:nosplit
func storeByte(addr uintptr, b byte)
