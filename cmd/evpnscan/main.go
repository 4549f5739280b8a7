// Evpnscan - BGP EVPN/VPN fleet report tool
//
// A CLI tool that polls SR Linux switches over gNMI and produces a
// correlated report of BGP EVPN and BGP VPN routing-instance state:
//   - One-shot Get reads (no subscriptions), two paths per device
//   - Per-instance inner join of the EVPN and VPN record sets
//   - Bounded-parallel polling; one unreachable device never aborts the run
//
// Usage:
//
//	evpnscan report nodes.yml              # table output, both sort orders
//	evpnscan report nodes.yml --json       # joined rows as JSON
//	evpnscan report nodes.yml -p 16        # poll 16 devices at a time
//	evpnscan settings set roster nodes.yml # default roster for bare "report"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evpn-tools/evpnscan/pkg/settings"
	"github.com/evpn-tools/evpnscan/pkg/util"
	"github.com/evpn-tools/evpnscan/pkg/version"
)

var (
	verbose bool

	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "evpnscan",
	Short:         "BGP EVPN/VPN fleet report tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Evpnscan polls a fleet of SR Linux switches over gNMI and reports
BGP EVPN and BGP VPN routing-instance state, correlated per instance.

  evpnscan report <roster.yml>`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("evpnscan " + version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
