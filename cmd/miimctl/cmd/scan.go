package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	miim "github.com/datdenkikniet/ieee802-3-miim"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Probe all 32 PHY station addresses",
	Long: `Probe every station address on the management bus and report the
addresses where a PHY answers, with its identifier when readable.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	bus, _, closer, err := openBus(ifname)
	if err != nil {
		return err
	}
	defer closer()

	found := miim.FindPHYs(bus, nil)
	if len(found) == 0 {
		return fmt.Errorf("no PHY found on %s", ifname)
	}
	for _, addr := range found {
		dev, err := miim.NewDevice(bus, addr, miim.DeviceConfig{})
		if err != nil {
			return err
		}
		if id, ok := dev.PHYID(); ok {
			fmt.Printf("phy %2d: id=0x%08x\n", addr, id)
		} else {
			fmt.Printf("phy %2d: no extended registers\n", addr)
		}
	}
	return nil
}
