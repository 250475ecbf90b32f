// Package phys contains drivers for concrete Ethernet PHY chips built on
// the generic register sequencing of the miim package. Each driver embeds
// *miim.Device and adds only the chip-specific facts: fixed capabilities,
// vendor status registers and interrupt layout.
package phys

import (
	miim "github.com/datdenkikniet/ieee802-3-miim"
)

//go:generate stringer -type=LANInterrupt -linecomment -output phys_stringers.go

var _ miim.PHYWithSpeed = (*LAN87xxA)(nil) // compile time guarantee of interface implementation.

// SMSC LAN87xxA vendor registers.
const (
	lanRegIntSource = 0x1D // Interrupt Source Flag register (read clears)
	lanRegIntMask   = 0x1E // Interrupt Mask register
	lanRegSSR       = 0x1F // Special Status Register

	lanSSRAutoNegDone uint16 = 1 << 12
	lanSSRSpeedShift         = 2
	lanSSRSpeedMask   uint16 = 0b111

	// WUCSR lives in the PCS MMD (device address 3).
	lanMMDPCS   = 3
	lanRegWUCSR = 0x8010
)

// lanStatus is the LAN87xxA capability set per datasheet: 10/100 both
// duplexes, autonegotiation, extended registers, no T4 and no gigabit.
var lanStatus = miim.PhyStatus{
	FD100BaseX:      true,
	HD100BaseX:      true,
	FD10Mbps:        true,
	HD10Mbps:        true,
	AutoNegotiation: true,
	ExtendedCaps:    true,
}

// LANInterrupt identifies a LAN87xxA interrupt source.
type LANInterrupt uint8

const (
	LANIntPageReceived        LANInterrupt = iota // page received
	LANIntParallelDetectFault                     // parallel detection fault
	LANIntLPAck                                   // link partner ack
	LANIntLinkDown                                // link down
	LANIntRemoteFault                             // remote fault
	LANIntAutoNegComplete                         // auto-negotiation complete
	LANIntEnergyOn                                // energy on
	LANIntWakeOnLAN                               // wake on LAN
)

// bit returns the interrupt's position in the source and mask registers.
// Bit 0 is reserved, sources start at bit 1.
func (i LANInterrupt) bit() uint16 { return 1 << (uint16(i) + 1) }

// LAN87xxA is an SMSC (Microchip) LAN8720A or LAN8742A 10/100 Ethernet PHY.
type LAN87xxA struct {
	*miim.Device
	// hasMMD: the LAN8742A has MMD registers (wake-on-LAN); the LAN8720A
	// does not.
	hasMMD bool
}

// NewLAN8720A returns a driver for the LAN8720A at phyAddr.
func NewLAN8720A(bus miim.Miim, phyAddr uint8) (*LAN87xxA, error) {
	return newLAN87xxA(bus, phyAddr, false)
}

// NewLAN8742A returns a driver for the LAN8742A at phyAddr.
func NewLAN8742A(bus miim.Miim, phyAddr uint8) (*LAN87xxA, error) {
	return newLAN87xxA(bus, phyAddr, true)
}

func newLAN87xxA(bus miim.Miim, phyAddr uint8, hasMMD bool) (*LAN87xxA, error) {
	status := lanStatus
	ad := status.BestAdvertisement()
	dev, err := miim.NewDevice(bus, phyAddr, miim.DeviceConfig{
		Status:        &status,
		Advertisement: &ad,
	})
	if err != nil {
		return nil, err
	}
	return &LAN87xxA{Device: dev, hasMMD: hasMMD}, nil
}

// Init prepares the PHY for autonegotiated operation: clears the wake-up
// control/status register on chips that have one, writes the best supported
// advertisement, then enables and restarts autonegotiation.
func (p *LAN87xxA) Init() {
	if p.hasMMD {
		// A set WU CSR keeps the chip in wake-up mode after a warm boot.
		p.MMDWrite(lanMMDPCS, lanRegWUCSR, 0)
	}
	p.SetAdvertisement(p.BestSupportedAdvertisement())
	p.ModifyBCR(func(r miim.BCR) miim.BCR {
		r.SetAutoNegotiation(true)
		return r | miim.BCRANRestart
	})
}

// CurrentLinkMode decodes the operating speed and duplex from the Special
// Status Register. ok is false when the 3-bit speed field holds none of the
// four valid codes, which indicates a corrupt read or an illegal chip
// state.
func (p *LAN87xxA) CurrentLinkMode() (miim.LinkMode, bool) {
	ssr := p.Read(lanRegSSR)
	switch ssr >> lanSSRSpeedShift & lanSSRSpeedMask {
	case 0b001:
		return miim.Link10HDX, true
	case 0b101:
		return miim.Link10FDX, true
	case 0b010:
		return miim.Link100HDX, true
	case 0b110:
		return miim.Link100FDX, true
	}
	return miim.LinkDown, false
}

// LinkEstablished returns true once the link is up and autonegotiation has
// completed in both the BSR and the vendor status register.
func (p *LAN87xxA) LinkEstablished() bool {
	bsr := p.BSR()
	ssr := p.Read(lanRegSSR)
	return bsr.LinkUp() && bsr.AutoNegotiationComplete() && ssr&lanSSRAutoNegDone != 0
}

// BlockUntilLink busy-polls until LinkEstablished. Unbounded; callers bound
// it externally.
func (p *LAN87xxA) BlockUntilLink() {
	for !p.LinkEstablished() {
	}
}

// EnableInterrupt unmasks one interrupt source.
func (p *LAN87xxA) EnableInterrupt(i LANInterrupt) {
	p.Write(lanRegIntMask, p.Read(lanRegIntMask)|i.bit())
}

// ActiveInterrupts reads the interrupt source register, which clears it,
// and appends the active sources to dst.
func (p *LAN87xxA) ActiveInterrupts(dst []LANInterrupt) []LANInterrupt {
	src := p.Read(lanRegIntSource)
	for i := LANIntPageReceived; i <= LANIntWakeOnLAN; i++ {
		if src&i.bit() != 0 {
			dst = append(dst, i)
		}
	}
	return dst
}
