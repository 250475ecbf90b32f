package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	miim "github.com/datdenkikniet/ieee802-3-miim"
)

var (
	// Global flags
	ifname  string
	phyAddr int
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "miimctl",
	Short: "IEEE 802.3 PHY management over MDIO",
	Long: `Inspect and configure Ethernet PHYs through the MII management
interface of a network interface.

Examples:
  miimctl scan -i eth0                 # Probe all 32 PHY addresses
  miimctl status -i eth0               # Decode status and capabilities
  miimctl dump -i eth0 -a 1            # Hex dump registers 0-31 of PHY 1
  miimctl mmd read -i eth0 3 0x8010    # Read an extended register`,
	Version: "1.0.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ifname, "ifname", "i", "eth0",
		"network interface whose management bus to use")
	rootCmd.PersistentFlags().IntVarP(&phyAddr, "addr", "a", -1,
		"PHY station address (default: the kernel driver's PHY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openDevice opens the platform bus and a Device on the selected PHY.
func openDevice() (*miim.Device, func() error, error) {
	bus, defaultAddr, closer, err := openBus(ifname)
	if err != nil {
		return nil, nil, err
	}
	addr := uint8(defaultAddr)
	if phyAddr >= 0 {
		addr = uint8(phyAddr)
	}
	logger().Debug("opened management bus", "ifname", ifname, "phyaddr", addr)
	dev, err := miim.NewDevice(bus, addr, miim.DeviceConfig{})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return dev, closer, nil
}
