//go:build !amd64

package cpu

//go:nosplit
func idle() {}

//go:nosplit
func halt() {
	for {
	}
}
