package cpu

import "testing"

// Idle and Halt execute privileged instructions, so on the host only the
// method set is checked.
func TestCPUMethodSet(t *testing.T) {
	var c interface {
		Idle()
		Halt()
	} = &CPU{}
	if c == nil {
		t.Fatal("CPU does not provide Idle and Halt")
	}
}
