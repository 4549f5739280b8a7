// Package report turns raw routing-instance trees into typed EVPN and VPN
// records and reconciles the two record sets per device.
package report

import (
	"github.com/evpn-tools/evpnscan/pkg/device"
	"github.com/evpn-tools/evpnscan/pkg/util"
)

// Vendor namespaces for the bgp-instance lists inside a network-instance tree.
const (
	evpnInstanceKey = "srl_nokia-bgp-evpn:bgp-instance"
	vpnBranchKey    = "srl_nokia-bgp-vpn:bgp-vpn"
)

// NoOperState is substituted when a bgp-instance carries no oper-state
// leaf. A deliberate display default, not an error.
const NoOperState = "no state"

// EvpnRecord is one BGP EVPN instance on a device.
type EvpnRecord struct {
	InstanceName   string
	InstanceID     int
	AdminState     string
	VXLANInterface string
	EVI            int
	ECMP           int
	OperState      string
}

// VpnRecord is one BGP VPN instance on a device. The three route-target
// fields are independently optional; nil means the leaf was absent.
type VpnRecord struct {
	InstanceName       string
	InstanceID         int
	RouteDistinguisher *string
	ExportRT           *string
	ImportRT           *string
}

// ExtractEvpn converts one network-instance tree into EVPN records, one per
// bgp-instance entry in source order. A tree without an EVPN branch yields
// zero records. A missing required field is a hard failure for the device.
func ExtractEvpn(tree device.RawInstance) ([]EvpnRecord, error) {
	name, err := requireString(tree, "", "name")
	if err != nil {
		return nil, err
	}

	var records []EvpnRecord
	for _, entry := range instanceEntries(tree, "bgp-evpn", evpnInstanceKey) {
		rec := EvpnRecord{InstanceName: name, OperState: NoOperState}

		if rec.InstanceID, err = requireInt(entry, name, "id"); err != nil {
			return nil, err
		}
		if rec.AdminState, err = requireString(entry, name, "admin-state"); err != nil {
			return nil, err
		}
		if rec.VXLANInterface, err = requireString(entry, name, "vxlan-interface"); err != nil {
			return nil, err
		}
		if rec.EVI, err = requireInt(entry, name, "evi"); err != nil {
			return nil, err
		}
		if rec.ECMP, err = requireInt(entry, name, "ecmp"); err != nil {
			return nil, err
		}
		if oper, ok := entry["oper-state"].(string); ok {
			rec.OperState = oper
		}

		records = append(records, rec)
	}
	return records, nil
}

// ExtractVpn converts one network-instance tree into VPN records, one per
// bgp-instance entry in source order. route-distinguisher and the two
// route-target leaves resolve to nil when any intermediate level is absent.
func ExtractVpn(tree device.RawInstance) ([]VpnRecord, error) {
	name, err := requireString(tree, "", "name")
	if err != nil {
		return nil, err
	}

	var records []VpnRecord
	for _, entry := range instanceEntries(tree, vpnBranchKey, "bgp-instance") {
		rec := VpnRecord{InstanceName: name}

		if rec.InstanceID, err = requireInt(entry, name, "id"); err != nil {
			return nil, err
		}
		rec.RouteDistinguisher = optString(entry, "route-distinguisher", "rd")
		rec.ExportRT = optString(entry, "route-target", "export-rt")
		rec.ImportRT = optString(entry, "route-target", "import-rt")

		records = append(records, rec)
	}
	return records, nil
}

// instanceEntries returns the bgp-instance maps under
// protocols/<branch>/<list> in source order. Any absent level yields nil.
func instanceEntries(tree device.RawInstance, branch, list string) []map[string]any {
	protocols, _ := tree["protocols"].(map[string]any)
	proto, _ := protocols[branch].(map[string]any)
	raw, _ := proto[list].([]any)

	var entries []map[string]any
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func requireString(m map[string]any, instance, field string) (string, error) {
	s, ok := m[field].(string)
	if !ok {
		return "", util.NewSchemaError(instance, field)
	}
	return s, nil
}

// requireInt accepts the numeric shapes a decoded JSON tree can carry.
func requireInt(m map[string]any, instance, field string) (int, error) {
	switch v := m[field].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, util.NewSchemaError(instance, field)
	}
}

// optString walks nested maps by key and returns the string leaf, or nil
// when any level along the way is absent.
func optString(m map[string]any, keys ...string) *string {
	cur := any(m)
	for _, key := range keys {
		inner, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		if cur, ok = inner[key]; !ok {
			return nil
		}
	}
	if s, ok := cur.(string); ok {
		return &s
	}
	return nil
}
