package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var mmdCmd = &cobra.Command{
	Use:   "mmd",
	Short: "Access extended (MMD) registers via indirect addressing",
}

var mmdReadCmd = &cobra.Command{
	Use:   "read <devaddr> <regaddr>",
	Short: "Read an MMD register",
	Args:  cobra.ExactArgs(2),
	RunE:  runMMDRead,
}

var mmdWriteCmd = &cobra.Command{
	Use:   "write <devaddr> <regaddr> <value>",
	Short: "Write an MMD register",
	Args:  cobra.ExactArgs(3),
	RunE:  runMMDWrite,
}

func init() {
	rootCmd.AddCommand(mmdCmd)
	mmdCmd.AddCommand(mmdReadCmd)
	mmdCmd.AddCommand(mmdWriteCmd)
}

// parseUint accepts decimal or 0x-prefixed hex.
func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", s, err)
	}
	return v, nil
}

func runMMDRead(cmd *cobra.Command, args []string) error {
	devAddr, err := parseUint(args[0], 5)
	if err != nil {
		return err
	}
	regAddr, err := parseUint(args[1], 16)
	if err != nil {
		return err
	}
	dev, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()

	value := dev.MMDRead(uint8(devAddr), uint16(regAddr))
	fmt.Printf("mmd %d reg 0x%04x = 0x%04x\n", devAddr, regAddr, value)
	return nil
}

func runMMDWrite(cmd *cobra.Command, args []string) error {
	devAddr, err := parseUint(args[0], 5)
	if err != nil {
		return err
	}
	regAddr, err := parseUint(args[1], 16)
	if err != nil {
		return err
	}
	value, err := parseUint(args[2], 16)
	if err != nil {
		return err
	}
	dev, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()

	dev.MMDWrite(uint8(devAddr), uint16(regAddr), uint16(value))
	return nil
}
