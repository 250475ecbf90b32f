package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	miim "github.com/datdenkikniet/ieee802-3-miim"
)

var (
	ad10HD, ad10FD   bool
	ad100HD, ad100FD bool
	adT4             bool
	adPause          string
	adRestart        bool
)

var advertiseCmd = &cobra.Command{
	Use:   "advertise",
	Short: "Write the auto-negotiation advertisement",
	Long: `Write the local auto-negotiation advertisement register. Requested
capabilities the PHY does not support are masked out. On PHYs without
extended registers this is a no-op.

Examples:
  miimctl advertise -i eth0 --100fd --100hd --pause symmetric --restart
  miimctl advertise -i eth0 --best --restart`,
	RunE: runAdvertise,
}

var adBest bool

func init() {
	rootCmd.AddCommand(advertiseCmd)

	advertiseCmd.Flags().BoolVar(&ad10HD, "10hd", false, "advertise 10BASE-T half-duplex")
	advertiseCmd.Flags().BoolVar(&ad10FD, "10fd", false, "advertise 10BASE-T full-duplex")
	advertiseCmd.Flags().BoolVar(&ad100HD, "100hd", false, "advertise 100BASE-TX half-duplex")
	advertiseCmd.Flags().BoolVar(&ad100FD, "100fd", false, "advertise 100BASE-TX full-duplex")
	advertiseCmd.Flags().BoolVar(&adT4, "t4", false, "advertise 100BASE-T4")
	advertiseCmd.Flags().BoolVar(&adBest, "best", false, "advertise everything the PHY supports")
	advertiseCmd.Flags().StringVar(&adPause, "pause", "none",
		"pause mode: none, asym, symmetric, both")
	advertiseCmd.Flags().BoolVar(&adRestart, "restart", false,
		"restart auto-negotiation after writing")
}

func parsePause(s string) (miim.Pause, error) {
	switch s {
	case "none":
		return miim.PauseNone, nil
	case "asym":
		return miim.PauseAsymmetricPartner, nil
	case "symmetric":
		return miim.PauseSymmetric, nil
	case "both":
		return miim.PauseSymmetricAndAsymmetricLocal, nil
	}
	return 0, fmt.Errorf("unknown pause mode %q", s)
}

func runAdvertise(cmd *cobra.Command, args []string) error {
	pause, err := parsePause(adPause)
	if err != nil {
		return err
	}
	dev, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()

	var ad miim.AutoNegotiationAdvertisement
	if adBest {
		ad = dev.BestSupportedAdvertisement()
	} else {
		ad = miim.AutoNegotiationAdvertisement{
			HD10BaseT:   ad10HD,
			FD10BaseT:   ad10FD,
			HD100BaseTX: ad100HD,
			FD100BaseTX: ad100FD,
			Base100T4:   adT4,
		}
	}
	ad.Pause = pause

	if !dev.Status().ExtendedCaps {
		return fmt.Errorf("phy %d has no extended registers, nothing to advertise", dev.StationAddr())
	}
	dev.SetAdvertisement(ad)
	if adRestart {
		dev.SetAutoNegotiation(true)
		dev.RestartAutoNegotiation()
	}
	return nil
}
