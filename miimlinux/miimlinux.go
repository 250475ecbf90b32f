//go:build linux

// Package miimlinux provides a miim.Miim transport backed by the Linux MII
// ioctls (SIOCGMIIREG/SIOCSMIIREG) on a network interface. It reaches the
// same PHY registers the kernel's own PHY driver manages, which makes it
// suitable for diagnostics on a running system.
//
// Register writes require CAP_NET_ADMIN.
package miimlinux

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	miim "github.com/datdenkikniet/ieee802-3-miim"
)

var _ miim.Miim = (*Bus)(nil)

// miiData mirrors struct mii_ioctl_data from linux/mii.h.
type miiData struct {
	phyID  uint16
	regNum uint16
	valIn  uint16
	valOut uint16
}

// ifreqMii mirrors struct ifreq with the MII data occupying the union. The
// trailing pad brings the struct to sizeof(struct ifreq); the kernel copies
// the full 40 bytes.
type ifreqMii struct {
	name [unix.IFNAMSIZ]byte
	mii  miiData
	_    [16]byte
}

// Bus accesses the MII management bus behind one network interface.
//
// The miim.Miim contract has no error returns: a failed ioctl read yields
// 0xFFFF, the same value an undriven bus returns. The first failure is
// latched and available through Err for callers that want to distinguish
// an absent PHY from a broken transport.
type Bus struct {
	fd         int
	name       [unix.IFNAMSIZ]byte
	defaultPhy uint8
	err        error
}

// Open opens a management bus handle on the named interface, e.g. "eth0".
func Open(ifname string) (*Bus, error) {
	if len(ifname) >= unix.IFNAMSIZ {
		return nil, fmt.Errorf("interface name %q too long", ifname)
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("open MII socket: %w", err)
	}
	b := &Bus{fd: fd}
	copy(b.name[:], ifname)

	// SIOCGMIIPHY reports the PHY address the kernel driver talks to.
	var ifr ifreqMii
	ifr.name = b.name
	err = b.ioctl(unix.SIOCGMIIPHY, &ifr)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("query PHY address of %s: %w", ifname, err)
	}
	b.defaultPhy = uint8(ifr.mii.phyID & 0x1F)
	return b, nil
}

// DefaultPHYAddr returns the station address of the PHY the kernel driver
// for this interface uses.
func (b *Bus) DefaultPHYAddr() uint8 {
	return b.defaultPhy
}

// Read implements miim.Miim. Returns 0xFFFF when the ioctl fails; see Err.
func (b *Bus) Read(phyAddr, regAddr uint8) uint16 {
	var ifr ifreqMii
	ifr.name = b.name
	ifr.mii.phyID = uint16(phyAddr)
	ifr.mii.regNum = uint16(regAddr)
	err := b.ioctl(unix.SIOCGMIIREG, &ifr)
	if err != nil {
		b.setErr(fmt.Errorf("MII read phy %d reg %d: %w", phyAddr, regAddr, err))
		return 0xFFFF
	}
	return ifr.mii.valOut
}

// Write implements miim.Miim. A failed ioctl is recorded in Err.
func (b *Bus) Write(phyAddr, regAddr uint8, data uint16) {
	var ifr ifreqMii
	ifr.name = b.name
	ifr.mii.phyID = uint16(phyAddr)
	ifr.mii.regNum = uint16(regAddr)
	ifr.mii.valIn = data
	err := b.ioctl(unix.SIOCSMIIREG, &ifr)
	if err != nil {
		b.setErr(fmt.Errorf("MII write phy %d reg %d: %w", phyAddr, regAddr, err))
	}
}

// Err returns the first transport error since the last call to Err, and
// clears it.
func (b *Bus) Err() error {
	err := b.err
	b.err = nil
	return err
}

// Close releases the underlying socket.
func (b *Bus) Close() error {
	return unix.Close(b.fd)
}

func (b *Bus) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Bus) ioctl(req uint, ifr *ifreqMii) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(b.fd), uintptr(req), uintptr(unsafe.Pointer(ifr)))
	if errno != 0 {
		return errno
	}
	return nil
}
