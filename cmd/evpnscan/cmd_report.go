package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/evpn-tools/evpnscan/pkg/cli"
	"github.com/evpn-tools/evpnscan/pkg/device"
	"github.com/evpn-tools/evpnscan/pkg/report"
	"github.com/evpn-tools/evpnscan/pkg/roster"
)

var (
	reportParallel int
	reportTimeout  time.Duration
	reportJSON     bool
)

var reportColumns = []string{
	"Router", "Network instance", "ID", "EVPN Admin state", "VXLAN interface",
	"EVI", "ECMP", "Oper state", "RD", "import-rt", "export-rt",
}

var reportCmd = &cobra.Command{
	Use:   "report [roster-file]",
	Short: "Poll the fleet and report correlated EVPN/VPN instance state",
	Long: `Poll every switch in the roster over gNMI, fetch its BGP EVPN and
BGP VPN bgp-instance state, and print one joined row per routing instance
present in both record sets.

The roster is a YAML file:

  switches:
    srl: [leaf1, leaf2]
  username: admin
  password: admin
  gnmi_port: 57400
  skip_verify: true

An empty password triggers an interactive prompt. Unreachable devices are
reported as warnings and contribute no rows.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportParallel, "parallel", "p", 0, "Devices polled concurrently (default from settings, else 8)")
	reportCmd.Flags().DurationVarP(&reportTimeout, "timeout", "t", device.DefaultTimeout, "Per-query timeout")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output joined rows as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	rosterPath := userSettings.DefaultRoster
	if len(args) > 0 {
		rosterPath = args[0]
	}
	if rosterPath == "" {
		return fmt.Errorf("no roster file given (pass one or set a default: evpnscan settings set roster <file>)")
	}

	devices, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}
	if err := promptPassword(devices); err != nil {
		return err
	}

	parallel := reportParallel
	if parallel == 0 {
		parallel = userSettings.GetParallel()
	}

	client := device.NewClient(reportTimeout)
	reports := report.Collect(context.Background(), client, devices, parallel)

	for _, rep := range reports {
		if rep.Err != nil {
			fmt.Fprintln(os.Stderr, cli.Red(fmt.Sprintf("%s: %v", rep.Device, rep.Err)))
		}
	}

	rows := report.FlattenRows(reports)

	if reportJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No data to display.")
	} else {
		printTables(rows)
	}

	fmt.Printf("Total time: %.2f seconds\n", time.Since(start).Seconds())
	return nil
}

// printTables renders the joined rows twice: in device-then-instance order,
// and re-sorted by network instance with alternating instance groups
// highlighted.
func printTables(rows []report.JoinedRow) {
	table := cli.NewTable(reportColumns...)
	for _, row := range rows {
		table.Row(
			row.Device,
			row.InstanceName,
			strconv.Itoa(row.InstanceID),
			row.AdminState,
			row.VXLANInterface,
			strconv.Itoa(row.EVI),
			strconv.Itoa(row.ECMP),
			row.OperState,
			orDash(row.RouteDistinguisher),
			orDash(row.ImportRT),
			orDash(row.ExportRT),
		)
	}

	fmt.Println(cli.Bold("Table 1: Sorted by Router"))
	table.Render(os.Stdout)

	fmt.Println()
	fmt.Println(cli.Bold("Table 2: Sorted by Network Instance"))
	table.SortBy(1)
	table.RenderHighlighted(os.Stdout, 1)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// promptPassword fills in the shared device password when the roster left
// it empty. All devices share credentials, so one prompt covers the fleet.
func promptPassword(devices []roster.Device) error {
	if len(devices) == 0 || devices[0].Password != "" {
		return nil
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", devices[0].Username)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	for i := range devices {
		devices[i].Password = string(pw)
	}
	return nil
}
