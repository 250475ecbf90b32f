package phys

import (
	"testing"

	"github.com/datdenkikniet/ieee802-3-miim/internal/miimtest"
)

func TestKSZ8081RInterrupts(t *testing.T) {
	var bus miimtest.Bus
	p, err := NewKSZ8081R(&bus, 3)
	if err != nil {
		t.Fatal(err)
	}
	p.EnableLinkInterrupts()
	if got := bus.Get(3, kszRegInterrupt); got != kszIntEnLinkUp|kszIntEnLinkDown {
		t.Errorf("interrupt register = %#04x, want %#04x", got, kszIntEnLinkUp|kszIntEnLinkDown)
	}

	bus.Set(3, kszRegInterrupt, kszIntEnLinkUp|kszIntEnLinkDown|KSZIntLinkDown)
	status := p.InterruptStatus()
	if status&KSZIntLinkDown == 0 || status&KSZIntLinkUp != 0 {
		t.Errorf("status = %#04x", status)
	}
}

func TestKSZ8081RAdvertisement(t *testing.T) {
	var bus miimtest.Bus
	p, err := NewKSZ8081R(&bus, 0)
	if err != nil {
		t.Fatal(err)
	}
	ad := p.BestSupportedAdvertisement()
	if !ad.HD10BaseT || !ad.FD10BaseT || !ad.HD100BaseTX || !ad.FD100BaseTX || !ad.Base100T4 {
		t.Errorf("best advertisement = %+v", ad)
	}
}
