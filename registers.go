package miim

// BCR represents the Basic Control Register at address 0x00.
// Reference: IEEE 802.3 Clause 22.2.4.1
type BCR uint16

const (
	BCRUnidirectional BCR = 0x0020 // Unidirectional transmit enable
	BCRSpeedSelMSB    BCR = 0x0040 // MSB of speed selector
	BCRCollisionTest  BCR = 0x0080 // Collision test
	BCRFullDuplex     BCR = 0x0100 // Full duplex mode
	BCRANRestart      BCR = 0x0200 // Restart auto-negotiation
	BCRIsolate        BCR = 0x0400 // Isolate PHY from MII
	BCRPowerDown      BCR = 0x0800 // Power down PHY
	BCRANEnable       BCR = 0x1000 // Enable auto-negotiation
	BCRSpeedSelLSB    BCR = 0x2000 // LSB of speed selector
	BCRLoopback       BCR = 0x4000 // Enable TXD loopback
	BCRReset          BCR = 0x8000 // Software reset (self-clearing)
)

// set sets or clears mask. Reserved bits are untouched so a modified value
// can be written back without losing what the chip put there.
func (r *BCR) set(mask BCR, b bool) {
	if b {
		*r |= mask
	} else {
		*r &^= mask
	}
}

// IsResetting returns true while the self-clearing reset bit is set.
func (r BCR) IsResetting() bool { return r&BCRReset != 0 }

// SetReset sets the software reset bit. The PHY clears it autonomously once
// its internal reset completes.
func (r *BCR) SetReset(b bool) { r.set(BCRReset, b) }

// Loopback returns true if TXD loopback is enabled.
func (r BCR) Loopback() bool { return r&BCRLoopback != 0 }

// SetLoopback enables or disables TXD loopback.
func (r *BCR) SetLoopback(b bool) { r.set(BCRLoopback, b) }

// AutoNegotiation returns true if auto-negotiation is enabled.
func (r BCR) AutoNegotiation() bool { return r&BCRANEnable != 0 }

// SetAutoNegotiation enables or disables auto-negotiation.
func (r *BCR) SetAutoNegotiation(b bool) { r.set(BCRANEnable, b) }

// PoweredDown returns true if the PHY is in power-down mode.
func (r BCR) PoweredDown() bool { return r&BCRPowerDown != 0 }

// SetPowerDown enables or disables power-down mode.
func (r *BCR) SetPowerDown(b bool) { r.set(BCRPowerDown, b) }

// Isolated returns true if the PHY is electrically isolated from the MII.
func (r BCR) Isolated() bool { return r&BCRIsolate != 0 }

// SetIsolate enables or disables MII isolation.
func (r *BCR) SetIsolate(b bool) { r.set(BCRIsolate, b) }

// CollisionTest returns true if the collision test signal is enabled.
func (r BCR) CollisionTest() bool { return r&BCRCollisionTest != 0 }

// SetCollisionTest enables or disables the collision test signal.
func (r *BCR) SetCollisionTest(b bool) { r.set(BCRCollisionTest, b) }

// Unidirectional returns true if unidirectional transmit is enabled.
func (r BCR) Unidirectional() bool { return r&BCRUnidirectional != 0 }

// SetUnidirectional enables or disables unidirectional transmit.
func (r *BCR) SetUnidirectional(b bool) { r.set(BCRUnidirectional, b) }

// FullDuplex returns true if the PHY is configured for full duplex.
// The PHY ignores this field while auto-negotiation is enabled.
func (r BCR) FullDuplex() bool { return r&BCRFullDuplex != 0 }

// SetFullDuplex configures half or full duplex operation.
// The PHY ignores this field while auto-negotiation is enabled.
func (r *BCR) SetFullDuplex(b bool) { r.set(BCRFullDuplex, b) }

// LinkSpeed decodes the 2-bit speed selector. The decode is total: the
// reserved MSB=1,LSB=1 combination decodes to SpeedIllegal rather than
// being coerced to a legal speed.
func (r BCR) LinkSpeed() LinkSpeed {
	msb := r&BCRSpeedSelMSB != 0
	lsb := r&BCRSpeedSelLSB != 0
	switch {
	case msb && lsb:
		return SpeedIllegal
	case msb:
		return Speed1000
	case lsb:
		return Speed100
	default:
		return Speed10
	}
}

// SetLinkSpeed encodes speed into the 2-bit speed selector, replacing the
// previous selection. SpeedIllegal has no bit representation and returns
// ErrIllegalLinkSpeed with the register unmodified.
// The PHY ignores this field while auto-negotiation is enabled.
func (r *BCR) SetLinkSpeed(speed LinkSpeed) error {
	var sel BCR
	switch speed {
	case Speed10:
		// Both selector bits clear.
	case Speed100:
		sel = BCRSpeedSelLSB
	case Speed1000:
		sel = BCRSpeedSelMSB
	default:
		return ErrIllegalLinkSpeed
	}
	*r = *r&^(BCRSpeedSelMSB|BCRSpeedSelLSB) | sel
	return nil
}

// LinkSpeed is the link speed selected by the BCR speed selector bits.
type LinkSpeed uint8

const (
	Speed10      LinkSpeed = iota // 10Mbps
	Speed100                      // 100Mbps
	Speed1000                     // 1000Mbps
	SpeedIllegal                  // illegal
)

// BSR represents the Basic Status Register at address 0x01.
// Bits 15..8 are static capability facts about the chip. Bits 5..1 track
// link conditions and must be re-read for every query, never cached.
// Reference: IEEE 802.3 Clause 22.2.4.2
type BSR uint16

const (
	BSRExtendedCaps        BSR = 0x0001 // Extended register set present
	BSRJabber              BSR = 0x0002 // Jabber condition detected
	BSRLinkStatus          BSR = 0x0004 // Link status (1=up, latched low)
	BSRANAble              BSR = 0x0008 // Auto-negotiation capable
	BSRRemoteFault         BSR = 0x0010 // Remote fault detected
	BSRANComplete          BSR = 0x0020 // Auto-negotiation complete
	BSRPreambleSuppression BSR = 0x0040 // Accepts management frames without preamble
	BSRUnidirectional      BSR = 0x0080 // Unidirectional transmit capable
	BSRExtendedStatus      BSR = 0x0100 // Extended status present in register 15
	BSR10HD                BSR = 0x0800 // 10Mbps half-duplex capable
	BSR10FD                BSR = 0x1000 // 10Mbps full-duplex capable
	BSR100BaseXHD          BSR = 0x2000 // 100BASE-X half-duplex capable
	BSR100BaseXFD          BSR = 0x4000 // 100BASE-X full-duplex capable
	BSR100BaseT4           BSR = 0x8000 // 100BASE-T4 capable
)

// LinkUp returns true if the PHY reports an established link.
func (r BSR) LinkUp() bool { return r&BSRLinkStatus != 0 }

// AutoNegotiationComplete returns true if the auto-negotiation process has
// finished.
func (r BSR) AutoNegotiationComplete() bool { return r&BSRANComplete != 0 }

// RemoteFault returns true if a remote fault condition was detected.
func (r BSR) RemoteFault() bool { return r&BSRRemoteFault != 0 }

// JabberDetected returns true if a jabber condition was detected.
func (r BSR) JabberDetected() bool { return r&BSRJabber != 0 }

// Status projects the static capability bits into a PhyStatus.
func (r BSR) Status() PhyStatus {
	return PhyStatus{
		Base100T4:           r&BSR100BaseT4 != 0,
		FD100BaseX:          r&BSR100BaseXFD != 0,
		HD100BaseX:          r&BSR100BaseXHD != 0,
		FD10Mbps:            r&BSR10FD != 0,
		HD10Mbps:            r&BSR10HD != 0,
		ExtendedStatus:      r&BSRExtendedStatus != 0,
		Unidirectional:      r&BSRUnidirectional != 0,
		PreambleSuppression: r&BSRPreambleSuppression != 0,
		AutoNegotiation:     r&BSRANAble != 0,
		ExtendedCaps:        r&BSRExtendedCaps != 0,
	}
}

// PhyStatus describes what a PHY is capable of, as reported by the static
// bits of its Basic Status Register.
type PhyStatus struct {
	// Base100T4 is set if the PHY supports 100BASE-T4.
	Base100T4 bool
	// FD100BaseX is set if the PHY supports 100BASE-X full duplex.
	FD100BaseX bool
	// HD100BaseX is set if the PHY supports 100BASE-X half duplex.
	HD100BaseX bool
	// FD10Mbps is set if the PHY supports 10 Mb/s full duplex.
	FD10Mbps bool
	// HD10Mbps is set if the PHY supports 10 Mb/s half duplex.
	HD10Mbps bool
	// ExtendedStatus is set if the PHY has extended status data in
	// register 15.
	ExtendedStatus bool
	// Unidirectional is set if the PHY supports unidirectional transmit.
	Unidirectional bool
	// PreambleSuppression is set if the PHY accepts management frames that
	// are not preceded by the preamble.
	PreambleSuppression bool
	// AutoNegotiation is set if the PHY can perform auto-negotiation.
	AutoNegotiation bool
	// ExtendedCaps is set if the PHY implements the extended register set
	// (registers 2 and above).
	ExtendedCaps bool
}

// ANER represents the Auto-Negotiation Expansion Register at address 0x06.
// Reference: IEEE 802.3 Clause 28.2.4.1.5
type ANER uint16

const (
	ANERPartnerANAble       ANER = 0x0001 // Link partner is auto-negotiation able
	ANERPageReceived        ANER = 0x0002 // A new link code word page was received
	ANERNextPageAble        ANER = 0x0004 // Local device supports next pages
	ANERPartnerNextPageAble ANER = 0x0008 // Link partner supports next pages
	ANERParallelDetectFault ANER = 0x0010 // Parallel detection fault
	ANERRxNextPageLoc       ANER = 0x0020 // Received next page is in register 8 (else 5)
	ANERRxNextPageLocAble   ANER = 0x0040 // Received next page location is reported
)

// PartnerAutoNegotiationAble returns true if the link partner can perform
// auto-negotiation.
func (r ANER) PartnerAutoNegotiationAble() bool { return r&ANERPartnerANAble != 0 }

// PageReceived returns true if a new link code word page has been received.
func (r ANER) PageReceived() bool { return r&ANERPageReceived != 0 }

// PartnerNextPageAble returns true if the link partner supports next pages.
func (r ANER) PartnerNextPageAble() bool { return r&ANERPartnerNextPageAble != 0 }

// ParallelDetectionFault returns true if a fault occurred during parallel
// detection.
func (r ANER) ParallelDetectionFault() bool { return r&ANERParallelDetectFault != 0 }

// NextPageLocation returns the register address holding received next page
// data: 8 or 5 when the PHY reports the location, fallback when it does not.
// Pre-location-able chips leave the choice to the caller, hence the
// fallback argument.
func (r ANER) NextPageLocation(fallback uint8) uint8 {
	if r&ANERRxNextPageLocAble == 0 {
		return fallback
	}
	if r&ANERRxNextPageLoc != 0 {
		return 8
	}
	return 5
}

// NextPage represents a link code word next page, located in register 7 for
// transmit and in register 5 or 8 for receive (see ANER.NextPageLocation).
// Reference: IEEE 802.3 Clause 28.2.4.1.6
type NextPage uint16

const (
	NextPageDataMask NextPage = 0x07FF // 11-bit message/unformatted code field
	NextPageToggle   NextPage = 0x0800 // Toggle bit
	NextPageAck2     NextPage = 0x1000 // Acknowledge 2
	NextPageMsgPage  NextPage = 0x2000 // Message page (else unformatted page)
	NextPageAck      NextPage = 0x4000 // Acknowledge
	NextPageNP       NextPage = 0x8000 // More next pages follow
)

func (np *NextPage) set(mask NextPage, b bool) {
	if b {
		*np |= mask
	} else {
		*np &^= mask
	}
}

// Ack returns the acknowledge bit.
func (np NextPage) Ack() bool { return np&NextPageAck != 0 }

// SetAck sets or clears the acknowledge bit.
func (np *NextPage) SetAck(b bool) { np.set(NextPageAck, b) }

// Ack2 returns the acknowledge 2 bit, indicating ability to comply with the
// received message.
func (np NextPage) Ack2() bool { return np&NextPageAck2 != 0 }

// SetAck2 sets or clears the acknowledge 2 bit.
func (np *NextPage) SetAck2(b bool) { np.set(NextPageAck2, b) }

// MessagePage returns true for a message page, false for an unformatted
// page.
func (np NextPage) MessagePage() bool { return np&NextPageMsgPage != 0 }

// SetMessagePage marks the page as a message or unformatted page.
func (np *NextPage) SetMessagePage(b bool) { np.set(NextPageMsgPage, b) }

// ToggleBit returns the toggle bit.
func (np NextPage) ToggleBit() bool { return np&NextPageToggle != 0 }

// SetToggleBit sets or clears the toggle bit.
func (np *NextPage) SetToggleBit(b bool) { np.set(NextPageToggle, b) }

// Data returns the 11-bit message or unformatted code field.
func (np NextPage) Data() uint16 { return uint16(np & NextPageDataMask) }

// SetData stores the 11-bit code field. Only the low 11 bits of data are
// used; the rest are masked off.
func (np *NextPage) SetData(data uint16) {
	*np = *np&^NextPageDataMask | NextPage(data)&NextPageDataMask
}

// ESR represents the Extended Status Register at address 0x0F. Its contents
// are only valid when the BSR reports extended status as present.
// Reference: IEEE 802.3 Clause 22.2.4.4
type ESR uint16

const (
	ESR1000BaseTHD ESR = 0x1000 // 1000BASE-T half-duplex capable
	ESR1000BaseTFD ESR = 0x2000 // 1000BASE-T full-duplex capable
	ESR1000BaseXHD ESR = 0x4000 // 1000BASE-X half-duplex capable
	ESR1000BaseXFD ESR = 0x8000 // 1000BASE-X full-duplex capable
)

// Status projects the capability bits into an ExtendedPhyStatus.
func (r ESR) Status() ExtendedPhyStatus {
	return ExtendedPhyStatus{
		FD1000BaseX: r&ESR1000BaseXFD != 0,
		HD1000BaseX: r&ESR1000BaseXHD != 0,
		FD1000BaseT: r&ESR1000BaseTFD != 0,
		HD1000BaseT: r&ESR1000BaseTHD != 0,
	}
}

// ExtendedPhyStatus describes the gigabit capabilities a PHY reports in its
// Extended Status Register.
type ExtendedPhyStatus struct {
	// FD1000BaseX is set if the PHY supports 1000BASE-X full duplex.
	FD1000BaseX bool
	// HD1000BaseX is set if the PHY supports 1000BASE-X half duplex.
	HD1000BaseX bool
	// FD1000BaseT is set if the PHY supports 1000BASE-T full duplex.
	FD1000BaseT bool
	// HD1000BaseT is set if the PHY supports 1000BASE-T half duplex.
	HD1000BaseT bool
}

// LinkMode is an established link's speed and duplex combination, as
// reported by vendor status registers (see PHYWithSpeed).
//
// Naming convention:
//   - HDX: half-duplex (one direction at a time)
//   - FDX: full-duplex (simultaneous bidirectional)
type LinkMode uint8

const (
	LinkDown   LinkMode = iota // down
	Link10HDX                  // 10M-H
	Link10FDX                  // 10M-F
	Link100HDX                 // 100M-H
	Link100FDX                 // 100M-F
)

// SpeedMbps returns the link speed in megabits per second, 0 when down.
func (lm LinkMode) SpeedMbps() int {
	switch lm {
	case Link10HDX, Link10FDX:
		return 10
	case Link100HDX, Link100FDX:
		return 100
	default:
		return 0
	}
}

// IsFullDuplex returns true if the link mode is full duplex.
func (lm LinkMode) IsFullDuplex() bool {
	return lm == Link10FDX || lm == Link100FDX
}
