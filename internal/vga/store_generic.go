//go:build !amd64

package vga

import "unsafe"

//go:nosplit
//go:noinline
func storeByte(addr uintptr, b byte) {
	*(*byte)(unsafe.Pointer(addr)) = b
}
