//go:build linux

package cmd

import (
	miim "github.com/datdenkikniet/ieee802-3-miim"
	"github.com/datdenkikniet/ieee802-3-miim/miimlinux"
)

func openBus(ifname string) (bus miim.Miim, defaultAddr uint8, closer func() error, err error) {
	b, err := miimlinux.Open(ifname)
	if err != nil {
		return nil, 0, nil, err
	}
	return b, b.DefaultPHYAddr(), b.Close, nil
}
