package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetWait time.Duration

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Software-reset the PHY and wait for completion",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	// IEEE 802.3 allows the PHY up to 500ms to complete a reset.
	resetCmd.Flags().DurationVar(&resetWait, "wait", time.Second,
		"how long to wait for the reset bit to self-clear")
}

func runReset(cmd *cobra.Command, args []string) error {
	dev, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()

	dev.Reset()
	deadline := time.Now().Add(resetWait)
	for dev.IsResetting() {
		if time.Now().After(deadline) {
			return fmt.Errorf("phy %d did not complete reset within %s", dev.StationAddr(), resetWait)
		}
		time.Sleep(10 * time.Millisecond)
	}
	logger().Debug("reset complete", "phyaddr", dev.StationAddr())
	return nil
}
