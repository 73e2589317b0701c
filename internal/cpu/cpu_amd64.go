package cpu

// Implemented in cpu_amd64.s.

//go:nosplit
func idle()

//go:nosplit
func halt()
