package report

import (
	"context"
	"sync"

	"github.com/evpn-tools/evpnscan/pkg/device"
	"github.com/evpn-tools/evpnscan/pkg/roster"
)

// The two structured paths read per device.
const (
	EvpnInstancePath = "network-instance/protocols/bgp-evpn/bgp-instance"
	VpnInstancePath  = "network-instance/protocols/bgp-vpn/bgp-instance"
)

// DefaultParallel bounds how many devices are polled at once.
const DefaultParallel = 8

// Fetcher issues one structured read against one device.
// *device.Client is the production implementation.
type Fetcher interface {
	FetchInstances(ctx context.Context, dev roster.Device, path string) device.FetchResult
}

// DeviceReport holds one device's joined rows, or the schema error that
// prevented extraction. Fetch failures are not errors here: they already
// degraded the device to zero records inside the fetch.
type DeviceReport struct {
	Device string
	Rows   []JoinedRow
	Err    error
}

// Collect polls every roster device and reconciles its EVPN and VPN record
// sets. Devices are polled through a bounded worker pool; the returned
// reports keep roster order regardless of completion order.
func Collect(ctx context.Context, f Fetcher, devices []roster.Device, parallel int) []DeviceReport {
	if parallel < 1 {
		parallel = DefaultParallel
	}

	reports := make([]DeviceReport, len(devices))
	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	for i, dev := range devices {
		wg.Add(1)
		go func(i int, dev roster.Device) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			reports[i] = collectDevice(ctx, f, dev)
		}(i, dev)
	}
	wg.Wait()

	return reports
}

// collectDevice fetches both paths (concurrently; both complete before the
// join), extracts typed records, and joins them on instance name.
func collectDevice(ctx context.Context, f Fetcher, dev roster.Device) DeviceReport {
	var evpnRes, vpnRes device.FetchResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		evpnRes = f.FetchInstances(ctx, dev, EvpnInstancePath)
	}()
	go func() {
		defer wg.Done()
		vpnRes = f.FetchInstances(ctx, dev, VpnInstancePath)
	}()
	wg.Wait()

	var evpnRecs []EvpnRecord
	for _, tree := range evpnRes.Instances {
		recs, err := ExtractEvpn(tree)
		if err != nil {
			return DeviceReport{Device: dev.Name, Err: err}
		}
		evpnRecs = append(evpnRecs, recs...)
	}

	var vpnRecs []VpnRecord
	for _, tree := range vpnRes.Instances {
		recs, err := ExtractVpn(tree)
		if err != nil {
			return DeviceReport{Device: dev.Name, Err: err}
		}
		vpnRecs = append(vpnRecs, recs...)
	}

	return DeviceReport{Device: dev.Name, Rows: Join(dev.Name, evpnRecs, vpnRecs)}
}

// FlattenRows concatenates the rows of all reports in device order,
// skipping devices that ended in error.
func FlattenRows(reports []DeviceReport) []JoinedRow {
	var rows []JoinedRow
	for _, rep := range reports {
		if rep.Err != nil {
			continue
		}
		rows = append(rows, rep.Rows...)
	}
	return rows
}
