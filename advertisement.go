package miim

// ANAR represents the Auto-Negotiation Advertisement Register value at
// address 0x04. The Link Partner Ability Register at 0x05 shares the same
// bit layout; only the address and the direction of intent differ.
// Reference: IEEE 802.3 Clause 28.2.4.1, Annex 28A/28B
type ANAR uint16

const (
	ANARSelectorMask ANAR = 0x001F // 5-bit protocol selector field

	ANARSel8023 ANAR = 0x0001 // IEEE Std 802.3
	ANARSel8029 ANAR = 0x0002 // IEEE Std 802.9 ISLAN-16T
	ANARSel8025 ANAR = 0x0003 // IEEE Std 802.5
	ANARSel1394 ANAR = 0x0005 // IEEE Std 1394

	ANAR10BaseT     ANAR = 0x0020 // 10BASE-T half-duplex
	ANAR10BaseTFD   ANAR = 0x0040 // 10BASE-T full-duplex
	ANAR100BaseTX   ANAR = 0x0080 // 100BASE-TX half-duplex
	ANAR100BaseTXFD ANAR = 0x0100 // 100BASE-TX full-duplex
	ANAR100BaseT4   ANAR = 0x0200 // 100BASE-T4
	ANARPause       ANAR = 0x0400 // Symmetric pause
	ANARPauseAsym   ANAR = 0x0800 // Asymmetric pause
	ANARExtNextPage ANAR = 0x1000 // Extended next page format
	ANARRemoteFault ANAR = 0x2000 // Remote fault
	ANARAck         ANAR = 0x4000 // Acknowledge (partner register only)
	ANARNextPage    ANAR = 0x8000 // Next page capable

	// ANARTechMask covers the technology ability bits gated by PhyStatus
	// during encoding.
	ANARTechMask  ANAR = ANAR10BaseT | ANAR10BaseTFD | ANAR100BaseTX | ANAR100BaseTXFD | ANAR100BaseT4
	ANARPauseMask ANAR = ANARPause | ANARPauseAsym
)

// SelectorField identifies the protocol family of an auto-negotiation link
// code word. In practice Selector8023 is used almost exclusively.
type SelectorField uint8

const (
	Selector8023          SelectorField = iota // IEEE Std 802.3
	Selector8029ISLAN16T                       // IEEE Std 802.9 ISLAN-16T
	Selector8025                               // IEEE Std 802.5
	Selector1394                               // IEEE Std 1394
)

// anar returns the selector's wire pattern. Total: every variant has a
// representation.
func (sf SelectorField) anar() ANAR {
	switch sf {
	case Selector8029ISLAN16T:
		return ANARSel8029
	case Selector8025:
		return ANARSel8025
	case Selector1394:
		return ANARSel1394
	default:
		return ANARSel8023
	}
}

// SelectorField decodes the 5-bit selector field. Matching is by bit test in
// fixed precedence order (802.3, 802.5, 802.9 ISLAN-16T, 1394): a value with
// several selector patterns present decodes as the first match. A value with
// no recognized pattern is malformed register content and returns
// ErrInvalidSelector.
func (a ANAR) SelectorField() (SelectorField, error) {
	sel := a & ANARSelectorMask
	switch {
	case sel&ANARSel8023 == ANARSel8023:
		return Selector8023, nil
	case sel&ANARSel8025 == ANARSel8025:
		return Selector8025, nil
	case sel&ANARSel8029 == ANARSel8029:
		return Selector8029ISLAN16T, nil
	case sel&ANARSel1394 == ANARSel1394:
		return Selector1394, nil
	}
	return 0, ErrInvalidSelector
}

// Pause is the flow control mode advertised by a station.
type Pause uint8

const (
	// PauseNone advertises no pause capability.
	PauseNone Pause = iota // no pause
	// PauseAsymmetricPartner advertises asymmetric pause toward the link
	// partner.
	PauseAsymmetricPartner // asymmetric toward partner
	// PauseSymmetric advertises symmetric pause.
	PauseSymmetric // symmetric
	// PauseSymmetricAndAsymmetricLocal advertises symmetric pause combined
	// with asymmetric pause toward the local device.
	PauseSymmetricAndAsymmetricLocal // symmetric and asymmetric toward local
)

// anar returns the pause mode's two-bit wire pattern.
func (p Pause) anar() ANAR {
	switch p {
	case PauseAsymmetricPartner:
		return ANARPauseAsym
	case PauseSymmetric:
		return ANARPause
	case PauseSymmetricAndAsymmetricLocal:
		return ANARPause | ANARPauseAsym
	default:
		return 0
	}
}

// Pause decodes the two pause bits. The decode is total over the four bit
// combinations and round-trips exactly with Pause.anar.
func (a ANAR) Pause() Pause {
	pause := a&ANARPause != 0
	asym := a&ANARPauseAsym != 0
	switch {
	case pause && asym:
		return PauseSymmetricAndAsymmetricLocal
	case pause:
		return PauseSymmetric
	case asym:
		return PauseAsymmetricPartner
	default:
		return PauseNone
	}
}

// AutoNegotiationAdvertisement describes what one station is willing to
// negotiate, independent of the wire encoding. The zero value advertises
// nothing with the mandatory 802.3 selector.
type AutoNegotiationAdvertisement struct {
	// Selector is the protocol family of the link code word.
	Selector SelectorField
	// HD10BaseT advertises 10BASE-T half duplex.
	HD10BaseT bool
	// FD10BaseT advertises 10BASE-T full duplex.
	FD10BaseT bool
	// HD100BaseTX advertises 100BASE-TX half duplex.
	HD100BaseTX bool
	// FD100BaseTX advertises 100BASE-TX full duplex.
	FD100BaseTX bool
	// Base100T4 advertises 100BASE-T4.
	Base100T4 bool
	// Pause is the advertised flow control mode.
	Pause Pause
}

// Advertisement decodes a capability register into its structured form.
// Used for the partner ability register and for readback of the local
// advertisement. Returns ErrInvalidSelector on an unrecognized selector
// field; the remaining fields of the returned value are still populated.
func (a ANAR) Advertisement() (AutoNegotiationAdvertisement, error) {
	sf, err := a.SelectorField()
	return AutoNegotiationAdvertisement{
		Selector:    sf,
		HD10BaseT:   a&ANAR10BaseT != 0,
		FD10BaseT:   a&ANAR10BaseTFD != 0,
		HD100BaseTX: a&ANAR100BaseTX != 0,
		FD100BaseTX: a&ANAR100BaseTXFD != 0,
		Base100T4:   a&ANAR100BaseT4 != 0,
		Pause:       a.Pause(),
	}, err
}

// ANAR encodes the advertisement for the wire, masked by what the chip can
// actually do: a technology ability bit is set only when the advertisement
// requests it AND status confirms the chip supports that exact speed/duplex
// combination. 100BASE-T4 has no status cross-check bit in the base register
// set and passes through as requested. Selector and pause are declarative
// rather than capability-gated and are inserted verbatim.
func (ad AutoNegotiationAdvertisement) ANAR(status PhyStatus) ANAR {
	var a ANAR
	if ad.HD10BaseT && status.HD10Mbps {
		a |= ANAR10BaseT
	}
	if ad.FD10BaseT && status.FD10Mbps {
		a |= ANAR10BaseTFD
	}
	if ad.HD100BaseTX && status.HD100BaseX {
		a |= ANAR100BaseTX
	}
	if ad.FD100BaseTX && status.FD100BaseX {
		a |= ANAR100BaseTXFD
	}
	if ad.Base100T4 {
		a |= ANAR100BaseT4
	}
	a |= ad.Selector.anar()
	a |= ad.Pause.anar()
	return a
}

// BestAdvertisement returns the advertisement requesting every capability
// the status reports as present. Selector and Pause are left at their
// defaults for the caller to adjust.
func (s PhyStatus) BestAdvertisement() AutoNegotiationAdvertisement {
	return AutoNegotiationAdvertisement{
		Base100T4:   s.Base100T4,
		FD100BaseTX: s.FD100BaseX,
		HD100BaseTX: s.HD100BaseX,
		FD10BaseT:   s.FD10Mbps,
		HD10BaseT:   s.HD10Mbps,
	}
}
