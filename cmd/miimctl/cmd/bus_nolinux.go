//go:build !linux

package cmd

import (
	"errors"

	miim "github.com/datdenkikniet/ieee802-3-miim"
)

func openBus(ifname string) (bus miim.Miim, defaultAddr uint8, closer func() error, err error) {
	return nil, 0, nil, errors.New("no MII management transport on this platform")
}
