package miim

import "testing"

func TestBCRFlags(t *testing.T) {
	tests := []struct {
		name string
		mask BCR
		get  func(BCR) bool
		set  func(*BCR, bool)
	}{
		{"reset", BCRReset, BCR.IsResetting, (*BCR).SetReset},
		{"loopback", BCRLoopback, BCR.Loopback, (*BCR).SetLoopback},
		{"autoneg", BCRANEnable, BCR.AutoNegotiation, (*BCR).SetAutoNegotiation},
		{"powerdown", BCRPowerDown, BCR.PoweredDown, (*BCR).SetPowerDown},
		{"isolate", BCRIsolate, BCR.Isolated, (*BCR).SetIsolate},
		{"fullduplex", BCRFullDuplex, BCR.FullDuplex, (*BCR).SetFullDuplex},
		{"collision", BCRCollisionTest, BCR.CollisionTest, (*BCR).SetCollisionTest},
		{"unidirectional", BCRUnidirectional, BCR.Unidirectional, (*BCR).SetUnidirectional},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, start := range []BCR{0x0000, 0xFFFF, 0x5555, 0xAAAA} {
				if got, want := tt.get(start), start&tt.mask != 0; got != want {
					t.Errorf("get on %#04x = %v, want %v", uint16(start), got, want)
				}
				r := start
				tt.set(&r, true)
				if r != start|tt.mask {
					t.Errorf("set(true) on %#04x = %#04x, want %#04x", uint16(start), uint16(r), uint16(start|tt.mask))
				}
				r = start
				tt.set(&r, false)
				if r != start&^tt.mask {
					t.Errorf("set(false) on %#04x = %#04x, want %#04x", uint16(start), uint16(r), uint16(start&^tt.mask))
				}
			}
		})
	}
}

func TestBCRLinkSpeedDecode(t *testing.T) {
	// All four selector combinations decode; the reserved one decodes to
	// SpeedIllegal instead of being coerced.
	tests := []struct {
		bcr  BCR
		want LinkSpeed
	}{
		{0, Speed10},
		{BCRSpeedSelLSB, Speed100},
		{BCRSpeedSelMSB, Speed1000},
		{BCRSpeedSelMSB | BCRSpeedSelLSB, SpeedIllegal},
	}
	for _, tt := range tests {
		if got := tt.bcr.LinkSpeed(); got != tt.want {
			t.Errorf("LinkSpeed of %#04x = %v, want %v", uint16(tt.bcr), got, tt.want)
		}
		// Other bits do not disturb the decode.
		noisy := tt.bcr | BCRANEnable | BCRLoopback
		if got := noisy.LinkSpeed(); got != tt.want {
			t.Errorf("LinkSpeed of noisy %#04x = %v, want %v", uint16(noisy), got, tt.want)
		}
	}
}

func TestBCRLinkSpeedEncode(t *testing.T) {
	tests := []struct {
		speed LinkSpeed
		want  BCR
	}{
		{Speed10, 0},
		{Speed100, BCRSpeedSelLSB},
		{Speed1000, BCRSpeedSelMSB},
	}
	for _, tt := range tests {
		// Start from the opposite selector pattern to prove replacement.
		r := BCR(BCRSpeedSelMSB | BCRSpeedSelLSB | BCRANEnable)
		err := r.SetLinkSpeed(tt.speed)
		if err != nil {
			t.Fatalf("SetLinkSpeed(%v): %v", tt.speed, err)
		}
		if want := tt.want | BCRANEnable; r != want {
			t.Errorf("SetLinkSpeed(%v) = %#04x, want %#04x", tt.speed, uint16(r), uint16(want))
		}
	}

	r := BCR(BCRSpeedSelLSB)
	err := r.SetLinkSpeed(SpeedIllegal)
	if err != ErrIllegalLinkSpeed {
		t.Errorf("SetLinkSpeed(SpeedIllegal) err = %v, want %v", err, ErrIllegalLinkSpeed)
	}
	if r != BCRSpeedSelLSB {
		t.Errorf("failed encode modified register to %#04x", uint16(r))
	}
}

func TestBSRStatus(t *testing.T) {
	tests := []struct {
		name string
		bsr  BSR
		want PhyStatus
	}{
		{"zero", 0, PhyStatus{}},
		{"all ones", 0xFFFF, PhyStatus{
			Base100T4: true, FD100BaseX: true, HD100BaseX: true,
			FD10Mbps: true, HD10Mbps: true, ExtendedStatus: true,
			Unidirectional: true, PreambleSuppression: true,
			AutoNegotiation: true, ExtendedCaps: true,
		}},
		{"10mbps only", BSR10FD | BSR10HD, PhyStatus{FD10Mbps: true, HD10Mbps: true}},
		{"extended", BSRExtendedCaps | BSRExtendedStatus, PhyStatus{ExtendedStatus: true, ExtendedCaps: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bsr.Status(); got != tt.want {
				t.Errorf("Status of %#04x = %+v, want %+v", uint16(tt.bsr), got, tt.want)
			}
		})
	}
}

func TestBSRDynamicBits(t *testing.T) {
	r := BSR(BSRLinkStatus | BSRANComplete)
	if !r.LinkUp() || !r.AutoNegotiationComplete() {
		t.Error("expected link up and autoneg complete")
	}
	if r.RemoteFault() || r.JabberDetected() {
		t.Error("unexpected fault bits")
	}
	r = BSRRemoteFault | BSRJabber
	if !r.RemoteFault() || !r.JabberDetected() {
		t.Error("expected fault bits")
	}
}

func TestANERNextPageLocation(t *testing.T) {
	tests := []struct {
		name     string
		aner     ANER
		fallback uint8
		want     uint8
	}{
		{"reported in 8", ANERRxNextPageLocAble | ANERRxNextPageLoc, 5, 8},
		{"reported in 5", ANERRxNextPageLocAble, 8, 5},
		{"not reported uses fallback 5", 0, 5, 5},
		{"not reported uses fallback 8", ANERRxNextPageLoc, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aner.NextPageLocation(tt.fallback); got != tt.want {
				t.Errorf("NextPageLocation(%d) = %d, want %d", tt.fallback, got, tt.want)
			}
		})
	}
}

func TestANERFlags(t *testing.T) {
	r := ANER(ANERPartnerANAble | ANERPageReceived | ANERParallelDetectFault | ANERPartnerNextPageAble)
	if !r.PartnerAutoNegotiationAble() || !r.PageReceived() ||
		!r.ParallelDetectionFault() || !r.PartnerNextPageAble() {
		t.Errorf("flags of %#04x decoded wrong", uint16(r))
	}
	if z := ANER(0); z.PartnerAutoNegotiationAble() || z.PageReceived() ||
		z.ParallelDetectionFault() || z.PartnerNextPageAble() {
		t.Error("zero register reported flags")
	}
}

func TestNextPageData(t *testing.T) {
	var np NextPage
	np.SetData(0xFFFF)
	if np.Data() != 0x07FF {
		t.Errorf("Data = %#04x, want masked to %#04x", np.Data(), 0x07FF)
	}
	if np.Ack() || np.ToggleBit() {
		t.Error("SetData disturbed flag bits")
	}
	np.SetAck(true)
	np.SetMessagePage(true)
	np.SetData(0x123)
	if np.Data() != 0x123 {
		t.Errorf("Data = %#04x, want %#04x", np.Data(), 0x123)
	}
	if !np.Ack() || !np.MessagePage() {
		t.Error("SetData cleared flag bits")
	}
}

func TestESRStatus(t *testing.T) {
	esr := ESR(ESR1000BaseTFD | ESR1000BaseXHD)
	want := ExtendedPhyStatus{FD1000BaseT: true, HD1000BaseX: true}
	if got := esr.Status(); got != want {
		t.Errorf("Status of %#04x = %+v, want %+v", uint16(esr), got, want)
	}
}

func TestLinkMode(t *testing.T) {
	tests := []struct {
		mode   LinkMode
		mbps   int
		duplex bool
	}{
		{LinkDown, 0, false},
		{Link10HDX, 10, false},
		{Link10FDX, 10, true},
		{Link100HDX, 100, false},
		{Link100FDX, 100, true},
	}
	for _, tt := range tests {
		if got := tt.mode.SpeedMbps(); got != tt.mbps {
			t.Errorf("%v.SpeedMbps() = %d, want %d", tt.mode, got, tt.mbps)
		}
		if got := tt.mode.IsFullDuplex(); got != tt.duplex {
			t.Errorf("%v.IsFullDuplex() = %v, want %v", tt.mode, got, tt.duplex)
		}
	}
}
