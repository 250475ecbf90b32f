package phys

import (
	miim "github.com/datdenkikniet/ieee802-3-miim"
)

var _ miim.PHYWithSpeed = (*DP83xxx)(nil)

// TI DP83xxx vendor registers.
const (
	dpRegPHYSTS = 0x19 // PHY Status register
	dpRegInt    = 0x1B // Interrupt register

	dpPHYSTSLink       uint16 = 1 << 0
	dpPHYSTS10Mbps     uint16 = 1 << 1
	dpPHYSTSFullDuplex uint16 = 1 << 2

	dpIntEnLinkChange uint16 = 1 << 5
	// DPIntLinkChange is set in InterruptStatus when the link status
	// changed.
	DPIntLinkChange uint16 = 1 << 13
)

// DP83xxx is a TI DP83xxx series 10/100 Ethernet PHY.
type DP83xxx struct {
	*miim.Device
	// hasPTP: the DP83640 stamps PTP events in hardware; the DP83848 does
	// not.
	hasPTP bool
}

// NewDP83848 returns a driver for the DP83848 at phyAddr.
func NewDP83848(bus miim.Miim, phyAddr uint8) (*DP83xxx, error) {
	return newDP83xxx(bus, phyAddr, false)
}

// NewDP83640 returns a driver for the DP83640 at phyAddr.
func NewDP83640(bus miim.Miim, phyAddr uint8) (*DP83xxx, error) {
	return newDP83xxx(bus, phyAddr, true)
}

func newDP83xxx(bus miim.Miim, phyAddr uint8, hasPTP bool) (*DP83xxx, error) {
	ad := miim.AutoNegotiationAdvertisement{
		HD10BaseT:   true,
		FD10BaseT:   true,
		HD100BaseTX: true,
		FD100BaseTX: true,
		Base100T4:   true,
	}
	dev, err := miim.NewDevice(bus, phyAddr, miim.DeviceConfig{Advertisement: &ad})
	if err != nil {
		return nil, err
	}
	return &DP83xxx{Device: dev, hasPTP: hasPTP}, nil
}

// HasPTP returns true if the chip supports hardware PTP timestamping.
func (p *DP83xxx) HasPTP() bool { return p.hasPTP }

// EnableLinkChangeInterrupt unmasks the link status change interrupt.
func (p *DP83xxx) EnableLinkChangeInterrupt() {
	p.Write(dpRegInt, dpIntEnLinkChange)
}

// InterruptStatus reads the interrupt register. Test the result against
// DPIntLinkChange.
func (p *DP83xxx) InterruptStatus() uint16 {
	return p.Read(dpRegInt)
}

// CurrentLinkMode decodes the operating speed and duplex from the PHYSTS
// register. ok is false while the link is down; the speed and duplex bits
// are only valid with an established link.
func (p *DP83xxx) CurrentLinkMode() (miim.LinkMode, bool) {
	sts := p.Read(dpRegPHYSTS)
	if sts&dpPHYSTSLink == 0 {
		return miim.LinkDown, false
	}
	mbit10 := sts&dpPHYSTS10Mbps != 0
	switch {
	case sts&dpPHYSTSFullDuplex != 0 && mbit10:
		return miim.Link10FDX, true
	case sts&dpPHYSTSFullDuplex != 0:
		return miim.Link100FDX, true
	case mbit10:
		return miim.Link10HDX, true
	default:
		return miim.Link100HDX, true
	}
}

// LinkEstablished returns true once autonegotiation has completed and the
// link is up.
func (p *DP83xxx) LinkEstablished() bool {
	bsr := p.BSR()
	return bsr.AutoNegotiationComplete() && bsr.LinkUp()
}
