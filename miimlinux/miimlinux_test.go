//go:build linux

package miimlinux

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// The kernel copies sizeof(struct ifreq) bytes for the MII ioctls; a short
// struct would let the copy run past the allocation.
func TestIfreqMiiSize(t *testing.T) {
	if want := unsafe.Sizeof(unix.Ifreq{}); unsafe.Sizeof(ifreqMii{}) != want {
		t.Fatalf("sizeof(ifreqMii) = %d, want %d", unsafe.Sizeof(ifreqMii{}), want)
	}
}

func TestOpenRejectsLongName(t *testing.T) {
	_, err := Open("an-interface-name-way-beyond-ifnamsiz")
	if err == nil {
		t.Fatal("expected error for over-long interface name")
	}
}
