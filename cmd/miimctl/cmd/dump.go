package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Hex dump registers 0-31",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	dev, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()

	for reg := uint8(0); reg <= 31; reg++ {
		if reg%8 == 0 {
			fmt.Printf("%02d:", reg)
		}
		fmt.Printf(" %04x", dev.Read(reg))
		if reg%8 == 7 {
			fmt.Println()
		}
	}
	return nil
}
