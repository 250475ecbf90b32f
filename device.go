package miim

// PHY is the capability set every chip driver exposes: the chip-specific
// facts (bus handle, station address, best advertisement, capability
// status) from which all register sequencing derives. Device implements PHY
// and provides the derived behavior; concrete chip drivers embed *Device
// and inherit it.
type PHY interface {
	// Bus returns the management bus the PHY is reached through.
	Bus() Miim
	// StationAddr returns the PHY's 5-bit station address.
	StationAddr() uint8
	// BestSupportedAdvertisement returns the largest advertisement the
	// chip supports, "largest" meaning the most capabilities.
	BestSupportedAdvertisement() AutoNegotiationAdvertisement
	// Status returns the chip's capability status.
	Status() PhyStatus
}

// PHYWithSpeed is implemented by chip drivers that can report the speed and
// duplex of an established link from a vendor status register. The base
// register set has no such register, so this is a per-chip extension.
type PHYWithSpeed interface {
	PHY
	// CurrentLinkMode returns the operating link mode. ok is false when
	// the vendor register holds no valid mode (link down or corrupt read).
	CurrentLinkMode() (mode LinkMode, ok bool)
}

// DeviceConfig carries the optional chip-specific facts for a Device.
type DeviceConfig struct {
	// Status, if non-nil, is used for all capability checks instead of
	// reading the BSR. Chip drivers whose capabilities are fixed by the
	// datasheet set this to skip redundant bus traffic.
	Status *PhyStatus
	// Advertisement, if non-nil, overrides the best-supported
	// advertisement. When nil it is derived from the status capabilities
	// at Configure time.
	Advertisement *AutoNegotiationAdvertisement
	// Pause is the pause mode applied to a derived best advertisement.
	// Ignored when Advertisement is non-nil.
	Pause Pause
}

// Device is a generic IEEE 802.3 Clause 22 PHY. It holds no state beyond
// the chip facts; every query is a fresh register read and every mutation a
// read-modify-write, so the device registers remain the single source of
// truth.
//
// Device performs no locking. A read-modify-write and the MMD access
// sequence each assume exclusive bus access for their duration.
type Device struct {
	bus    Miim
	addr   uint8
	bestAd AutoNegotiationAdvertisement
	status *PhyStatus
}

// NewDevice returns a configured Device. See Configure.
func NewDevice(bus Miim, phyAddr uint8, cfg DeviceConfig) (*Device, error) {
	d := &Device{}
	err := d.Configure(bus, phyAddr, cfg)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Configure resets all state of the device. When cfg leaves the
// advertisement to be derived this reads the BSR once to compute it.
func (d *Device) Configure(bus Miim, phyAddr uint8, cfg DeviceConfig) error {
	if bus == nil {
		return ErrInvalidConfig
	} else if phyAddr > 31 {
		return ErrInvalidPHYAddr
	}
	d.bus = bus
	d.addr = phyAddr
	d.status = cfg.Status
	if cfg.Advertisement != nil {
		d.bestAd = *cfg.Advertisement
	} else {
		ad := d.Status().BestAdvertisement()
		ad.Pause = cfg.Pause
		d.bestAd = ad
	}
	return nil
}

// Bus returns the underlying management bus.
func (d *Device) Bus() Miim { return d.bus }

// StationAddr returns the PHY address on the bus (0-31).
func (d *Device) StationAddr() uint8 { return d.addr }

// BestSupportedAdvertisement returns the advertisement established at
// Configure time.
func (d *Device) BestSupportedAdvertisement() AutoNegotiationAdvertisement {
	return d.bestAd
}

// Read reads a register of this PHY.
func (d *Device) Read(regAddr uint8) uint16 {
	return d.bus.Read(d.addr, regAddr)
}

// Write writes a register of this PHY.
func (d *Device) Write(regAddr uint8, value uint16) {
	d.bus.Write(d.addr, regAddr, value)
}

// BCR reads the Basic Control Register.
func (d *Device) BCR() BCR {
	return BCR(d.Read(AddrBCR))
}

// ModifyBCR applies f to the current BCR value and writes the result back.
// The read and write form a critical section on the bus.
func (d *Device) ModifyBCR(f func(BCR) BCR) {
	d.Write(AddrBCR, uint16(f(d.BCR())))
}

// BSR reads the Basic Status Register. The dynamic bits (link status,
// autoneg complete, remote fault, jabber) reflect the moment of the read.
func (d *Device) BSR() BSR {
	return BSR(d.Read(AddrBSR))
}

// Status returns the chip's capability status: the configured fixed status
// when one was supplied, otherwise a fresh BSR projection.
func (d *Device) Status() PhyStatus {
	if d.status != nil {
		return *d.status
	}
	return d.BSR().Status()
}

// IsResetting returns true while a software reset is in progress.
func (d *Device) IsResetting() bool {
	return d.BCR().IsResetting()
}

// Reset starts a software reset. The PHY clears the reset bit autonomously
// when done; poll IsResetting before further use, or use BlockingReset.
func (d *Device) Reset() {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetReset(true)
		return r
	})
}

// BlockingReset starts a software reset and busy-polls until the PHY
// reports completion. The loop is unbounded: IEEE 802.3 allows up to 500ms
// for reset, and a PHY that never clears the bit is absent or broken.
// Callers on a cooperative scheduler must wrap this with their own
// timeout or yield policy.
func (d *Device) BlockingReset() {
	d.Reset()
	for d.IsResetting() {
	}
}

// Loopback returns true if TXD loopback is enabled.
func (d *Device) Loopback() bool { return d.BCR().Loopback() }

// SetLoopback enables or disables TXD loopback.
func (d *Device) SetLoopback(enable bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetLoopback(enable)
		return r
	})
}

// AutoNegotiation returns true if auto-negotiation is enabled.
func (d *Device) AutoNegotiation() bool { return d.BCR().AutoNegotiation() }

// SetAutoNegotiation enables or disables auto-negotiation.
func (d *Device) SetAutoNegotiation(enable bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetAutoNegotiation(enable)
		return r
	})
}

// RestartAutoNegotiation restarts the auto-negotiation process.
func (d *Device) RestartAutoNegotiation() {
	d.ModifyBCR(func(r BCR) BCR {
		return r | BCRANRestart
	})
}

// PoweredDown returns true if the PHY is in power-down mode.
func (d *Device) PoweredDown() bool { return d.BCR().PoweredDown() }

// SetPowerDown enables or disables power-down mode.
func (d *Device) SetPowerDown(enable bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetPowerDown(enable)
		return r
	})
}

// Isolated returns true if the PHY is isolated from the MII.
func (d *Device) Isolated() bool { return d.BCR().Isolated() }

// SetIsolate enables or disables MII isolation.
func (d *Device) SetIsolate(enable bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetIsolate(enable)
		return r
	})
}

// CollisionTest returns true if the collision test signal is enabled.
func (d *Device) CollisionTest() bool { return d.BCR().CollisionTest() }

// SetCollisionTest enables or disables the collision test signal.
func (d *Device) SetCollisionTest(enable bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetCollisionTest(enable)
		return r
	})
}

// Unidirectional returns true if unidirectional transmit is enabled.
func (d *Device) Unidirectional() bool { return d.BCR().Unidirectional() }

// SetUnidirectional enables or disables unidirectional transmit.
func (d *Device) SetUnidirectional(enable bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetUnidirectional(enable)
		return r
	})
}

// FullDuplex returns true if the PHY is configured for full duplex.
// The PHY ignores this setting while auto-negotiation is enabled; that
// precedence is a hardware rule, not enforced here.
func (d *Device) FullDuplex() bool { return d.BCR().FullDuplex() }

// SetFullDuplex configures half or full duplex operation.
// The PHY ignores this setting while auto-negotiation is enabled.
func (d *Device) SetFullDuplex(fullDuplex bool) {
	d.ModifyBCR(func(r BCR) BCR {
		r.SetFullDuplex(fullDuplex)
		return r
	})
}

// LinkSpeed returns the configured forced link speed. Returns SpeedIllegal
// when the register holds the reserved selector combination.
// The PHY ignores this setting while auto-negotiation is enabled.
func (d *Device) LinkSpeed() LinkSpeed { return d.BCR().LinkSpeed() }

// SetLinkSpeed configures the forced link speed. Returns
// ErrIllegalLinkSpeed for SpeedIllegal, leaving the register untouched.
// The PHY ignores this setting while auto-negotiation is enabled.
func (d *Device) SetLinkSpeed(speed LinkSpeed) error {
	r := d.BCR()
	err := r.SetLinkSpeed(speed)
	if err != nil {
		return err
	}
	d.Write(AddrBCR, uint16(r))
	return nil
}

// LinkUp returns true if the PHY reports an established link.
func (d *Device) LinkUp() bool { return d.BSR().LinkUp() }

// AutoNegotiationComplete returns true if the auto-negotiation process has
// finished.
func (d *Device) AutoNegotiationComplete() bool {
	return d.BSR().AutoNegotiationComplete()
}

// PHYID reads the 32-bit PHY identifier from registers 2 and 3. ok is false
// when the chip has no extended register set and therefore no identifier
// registers.
func (d *Device) PHYID() (id uint32, ok bool) {
	if !d.Status().ExtendedCaps {
		return 0, false
	}
	msb := uint32(d.Read(AddrPHYID1))
	lsb := uint32(d.Read(AddrPHYID2))
	return msb<<16 | lsb, true
}

// ESR reads the Extended Status Register. ok is false when the BSR reports
// no extended status; the register contents are undefined in that case and
// are not read.
func (d *Device) ESR() (esr ESR, ok bool) {
	if !d.Status().ExtendedStatus {
		return 0, false
	}
	return ESR(d.Read(AddrESR)), true
}

// ExtendedStatus returns the decoded gigabit capabilities. ok is false when
// the chip reports no extended status.
func (d *Device) ExtendedStatus() (st ExtendedPhyStatus, ok bool) {
	esr, ok := d.ESR()
	if !ok {
		return ExtendedPhyStatus{}, false
	}
	return esr.Status(), true
}

// SetAdvertisement encodes ad (capability-gated against Status, see
// AutoNegotiationAdvertisement.ANAR) and writes it to the advertisement
// register. On chips without the extended register set there is no
// advertisement register to write; the call is then a silent no-op, a
// normal hardware variant rather than an error.
func (d *Device) SetAdvertisement(ad AutoNegotiationAdvertisement) {
	status := d.Status()
	if !status.ExtendedCaps {
		return
	}
	d.Write(AddrANAR, uint16(ad.ANAR(status)))
}

// Advertisement reads back the local advertisement register.
func (d *Device) Advertisement() (AutoNegotiationAdvertisement, error) {
	return ANAR(d.Read(AddrANAR)).Advertisement()
}

// PartnerAdvertisement reads and decodes the link partner ability register.
// Only meaningful once auto-negotiation is complete.
func (d *Device) PartnerAdvertisement() (AutoNegotiationAdvertisement, error) {
	return ANAR(d.Read(AddrANLPAR)).Advertisement()
}

// ANER reads the Auto-Negotiation Expansion Register. ok is false when the
// chip has no extended register set.
func (d *Device) ANER() (aner ANER, ok bool) {
	if !d.Status().ExtendedCaps {
		return 0, false
	}
	return ANER(d.Read(AddrANER)), true
}

// ReadNextPage reads the received next page from the register the ANER
// reports it in, or from fallbackLoc (5 or 8) when the chip does not report
// the location. ok is false when the chip has no extended register set.
func (d *Device) ReadNextPage(fallbackLoc uint8) (np NextPage, ok bool) {
	aner, ok := d.ANER()
	if !ok {
		return 0, false
	}
	return NextPage(d.Read(aner.NextPageLocation(fallbackLoc))), true
}
