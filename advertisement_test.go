package miim

import "testing"

func TestPauseRoundTrip(t *testing.T) {
	// Total over all four combinations of (pause, asym) bits.
	tests := []struct {
		bits ANAR
		want Pause
	}{
		{0, PauseNone},
		{ANARPauseAsym, PauseAsymmetricPartner},
		{ANARPause, PauseSymmetric},
		{ANARPause | ANARPauseAsym, PauseSymmetricAndAsymmetricLocal},
	}
	for _, tt := range tests {
		if got := tt.bits.Pause(); got != tt.want {
			t.Errorf("Pause of %#04x = %v, want %v", uint16(tt.bits), got, tt.want)
		}
		if got := tt.want.anar(); got != tt.bits {
			t.Errorf("anar of %v = %#04x, want %#04x", tt.want, uint16(got), uint16(tt.bits))
		}
	}
}

func TestSelectorFieldDecode(t *testing.T) {
	tests := []struct {
		name    string
		a       ANAR
		want    SelectorField
		wantErr error
	}{
		{"802.3", ANARSel8023, Selector8023, nil},
		{"802.9", ANARSel8029, Selector8029ISLAN16T, nil},
		// 0b00011 contains the 802.3 bit; first match wins.
		{"802.5 decodes as 802.3", ANARSel8025, Selector8023, nil},
		{"1394 decodes as 802.3", ANARSel1394, Selector8023, nil},
		{"802.3 and 802.5 set", ANARSel8023 | ANARSel8025, Selector8023, nil},
		{"no selector bits", 0, 0, ErrInvalidSelector},
		{"unassigned pattern", 0b00100, 0, ErrInvalidSelector},
		{"tech bits don't leak into selector", ANAR100BaseTXFD, 0, ErrInvalidSelector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.SelectorField()
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("SelectorField = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectorFieldEncodeTotal(t *testing.T) {
	for _, sf := range []SelectorField{Selector8023, Selector8029ISLAN16T, Selector8025, Selector1394} {
		a := sf.anar()
		if a == 0 || a&^ANARSelectorMask != 0 {
			t.Errorf("anar of %v = %#04x, outside selector field", sf, uint16(a))
		}
	}
}

func TestAdvertisementDecode(t *testing.T) {
	a := ANARSel8023 | ANAR10BaseTFD | ANAR100BaseTXFD | ANARPause
	ad, err := a.Advertisement()
	if err != nil {
		t.Fatal(err)
	}
	want := AutoNegotiationAdvertisement{
		Selector:    Selector8023,
		FD10BaseT:   true,
		FD100BaseTX: true,
		Pause:       PauseSymmetric,
	}
	if ad != want {
		t.Errorf("Advertisement = %+v, want %+v", ad, want)
	}

	_, err = ANAR(ANAR10BaseT).Advertisement()
	if err != ErrInvalidSelector {
		t.Errorf("err = %v, want %v", err, ErrInvalidSelector)
	}
}

func TestAdvertisementEncodeGating(t *testing.T) {
	// A technology bit is set only when requested AND supported.
	full := AutoNegotiationAdvertisement{
		HD10BaseT:   true,
		FD10BaseT:   true,
		HD100BaseTX: true,
		FD100BaseTX: true,
	}
	tests := []struct {
		name   string
		ad     AutoNegotiationAdvertisement
		status PhyStatus
		want   ANAR
	}{
		{
			"all supported",
			full,
			PhyStatus{HD10Mbps: true, FD10Mbps: true, HD100BaseX: true, FD100BaseX: true},
			ANARSel8023 | ANAR10BaseT | ANAR10BaseTFD | ANAR100BaseTX | ANAR100BaseTXFD,
		},
		{
			"100fd unsupported is masked",
			full,
			PhyStatus{HD10Mbps: true, FD10Mbps: true, HD100BaseX: true},
			ANARSel8023 | ANAR10BaseT | ANAR10BaseTFD | ANAR100BaseTX,
		},
		{
			"nothing supported",
			full,
			PhyStatus{},
			ANARSel8023,
		},
		{
			"supported but not requested",
			AutoNegotiationAdvertisement{FD10BaseT: true},
			PhyStatus{HD10Mbps: true, FD10Mbps: true, HD100BaseX: true, FD100BaseX: true},
			ANARSel8023 | ANAR10BaseTFD,
		},
		{
			// No status cross-check bit exists for T4 in the base
			// register set.
			"t4 passes through",
			AutoNegotiationAdvertisement{Base100T4: true},
			PhyStatus{},
			ANARSel8023 | ANAR100BaseT4,
		},
		{
			"pause and selector verbatim",
			AutoNegotiationAdvertisement{Selector: Selector8029ISLAN16T, Pause: PauseSymmetricAndAsymmetricLocal},
			PhyStatus{},
			ANARSel8029 | ANARPause | ANARPauseAsym,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ad.ANAR(tt.status); got != tt.want {
				t.Errorf("ANAR = %#04x, want %#04x", uint16(got), uint16(tt.want))
			}
		})
	}
}

func TestBestAdvertisement(t *testing.T) {
	status := PhyStatus{HD10Mbps: true, FD10Mbps: true}
	ad := status.BestAdvertisement()
	want := AutoNegotiationAdvertisement{HD10BaseT: true, FD10BaseT: true}
	if ad != want {
		t.Errorf("BestAdvertisement = %+v, want %+v", ad, want)
	}

	all := PhyStatus{
		Base100T4: true, FD100BaseX: true, HD100BaseX: true,
		FD10Mbps: true, HD10Mbps: true,
		// Non-technology capabilities must not leak into the ad.
		ExtendedCaps: true, AutoNegotiation: true,
	}
	ad = all.BestAdvertisement()
	want = AutoNegotiationAdvertisement{
		Base100T4: true, FD100BaseTX: true, HD100BaseTX: true,
		FD10BaseT: true, HD10BaseT: true,
	}
	if ad != want {
		t.Errorf("BestAdvertisement = %+v, want %+v", ad, want)
	}
	if ad.Selector != Selector8023 || ad.Pause != PauseNone {
		t.Error("selector and pause should stay at defaults")
	}
}

func TestAdvertisementEncodeDecodeRoundTrip(t *testing.T) {
	status := PhyStatus{
		Base100T4: true, FD100BaseX: true, HD100BaseX: true,
		FD10Mbps: true, HD10Mbps: true,
	}
	orig := AutoNegotiationAdvertisement{
		Selector:    Selector8023,
		FD100BaseTX: true,
		HD10BaseT:   true,
		Base100T4:   true,
		Pause:       PauseAsymmetricPartner,
	}
	back, err := orig.ANAR(status).Advertisement()
	if err != nil {
		t.Fatal(err)
	}
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}
