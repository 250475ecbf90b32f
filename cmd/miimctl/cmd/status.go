package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Decode PHY status, capabilities and negotiation results",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dev, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()

	bsr := dev.BSR()
	bcr := dev.BCR()
	fmt.Printf("phy %d on %s\n", dev.StationAddr(), ifname)
	if id, ok := dev.PHYID(); ok {
		fmt.Printf("  id:                0x%08x\n", id)
	}
	fmt.Printf("  link:              %v\n", bsr.LinkUp())
	fmt.Printf("  autoneg enabled:   %v\n", bcr.AutoNegotiation())
	fmt.Printf("  autoneg complete:  %v\n", bsr.AutoNegotiationComplete())
	fmt.Printf("  remote fault:      %v\n", bsr.RemoteFault())
	fmt.Printf("  jabber:            %v\n", bsr.JabberDetected())
	if !bcr.AutoNegotiation() {
		fmt.Printf("  forced speed:      %v full-duplex=%v\n", bcr.LinkSpeed(), bcr.FullDuplex())
	}

	st := bsr.Status()
	fmt.Printf("  capabilities:      100BASE-T4=%v 100BASE-X(FD/HD)=%v/%v 10Mbps(FD/HD)=%v/%v\n",
		st.Base100T4, st.FD100BaseX, st.HD100BaseX, st.FD10Mbps, st.HD10Mbps)
	if ext, ok := dev.ExtendedStatus(); ok {
		fmt.Printf("  gigabit:           1000BASE-X(FD/HD)=%v/%v 1000BASE-T(FD/HD)=%v/%v\n",
			ext.FD1000BaseX, ext.HD1000BaseX, ext.FD1000BaseT, ext.HD1000BaseT)
	}

	if bsr.AutoNegotiationComplete() {
		partner, err := dev.PartnerAdvertisement()
		if err != nil {
			return fmt.Errorf("decode partner capabilities: %w", err)
		}
		fmt.Printf("  partner:           %s 100BASE-TX(FD/HD)=%v/%v 10BASE-T(FD/HD)=%v/%v T4=%v pause=%s\n",
			partner.Selector, partner.FD100BaseTX, partner.HD100BaseTX,
			partner.FD10BaseT, partner.HD10BaseT, partner.Base100T4, partner.Pause)
	}
	return nil
}
