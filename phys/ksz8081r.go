package phys

import (
	miim "github.com/datdenkikniet/ieee802-3-miim"
)

var _ miim.PHY = (*KSZ8081R)(nil)

// Microchip KSZ8081R vendor registers.
const (
	kszRegInterrupt = 0x1B // Interrupt Control/Status register

	// Status bits in the low byte of the interrupt register. Reading the
	// register clears them.
	KSZIntLinkUp   uint16 = 1 << 0
	KSZIntLinkDown uint16 = 1 << 2

	// Enable bits in the high byte.
	kszIntEnLinkUp   uint16 = 1 << 8
	kszIntEnLinkDown uint16 = 1 << 10
)

// KSZ8081R is a Microchip KSZ8081R 10/100 Ethernet PHY.
type KSZ8081R struct {
	*miim.Device
}

// NewKSZ8081R returns a driver for the KSZ8081R at phyAddr.
func NewKSZ8081R(bus miim.Miim, phyAddr uint8) (*KSZ8081R, error) {
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
	return &KSZ8081R{Device: dev}, nil
}

// EnableLinkInterrupts unmasks the link up and link down interrupts.
func (p *KSZ8081R) EnableLinkInterrupts() {
	p.Write(kszRegInterrupt, kszIntEnLinkUp|kszIntEnLinkDown)
}

// InterruptStatus reads and clears the interrupt register. Test the result
// against KSZIntLinkUp and KSZIntLinkDown.
func (p *KSZ8081R) InterruptStatus() uint16 {
	return p.Read(kszRegInterrupt)
}
