package report

// JoinedRow correlates one routing instance's EVPN and VPN records on a
// device. A pure value: no back-reference to the source records.
type JoinedRow struct {
	Device             string  `json:"router"`
	InstanceName       string  `json:"network_instance"`
	InstanceID         int     `json:"id"`
	AdminState         string  `json:"admin_state"`
	VXLANInterface     string  `json:"vxlan_interface"`
	EVI                int     `json:"evi"`
	ECMP               int     `json:"ecmp"`
	OperState          string  `json:"oper_state"`
	RouteDistinguisher *string `json:"rd"`
	ImportRT           *string `json:"import_rt"`
	ExportRT           *string `json:"export_rt"`
}

// keyed is an insertion-ordered map from instance name to record. A
// duplicate name overwrites the earlier value but keeps its first-seen
// position, so join output order follows source order.
type keyed[T any] struct {
	names  []string
	byName map[string]T
}

func newKeyed[T any]() *keyed[T] {
	return &keyed[T]{byName: make(map[string]T)}
}

func (k *keyed[T]) put(name string, rec T) {
	if _, seen := k.byName[name]; !seen {
		k.names = append(k.names, name)
	}
	k.byName[name] = rec
}

// Join inner-joins a device's EVPN and VPN record sets on instance name.
// Rows come out in EVPN first-seen order; instances present on only one
// side are dropped. Name and ID are taken from the EVPN side.
func Join(deviceName string, evpn []EvpnRecord, vpn []VpnRecord) []JoinedRow {
	evpnByName := newKeyed[EvpnRecord]()
	for _, rec := range evpn {
		evpnByName.put(rec.InstanceName, rec)
	}
	vpnByName := newKeyed[VpnRecord]()
	for _, rec := range vpn {
		vpnByName.put(rec.InstanceName, rec)
	}

	var rows []JoinedRow
	for _, name := range evpnByName.names {
		v, ok := vpnByName.byName[name]
		if !ok {
			continue
		}
		e := evpnByName.byName[name]
		rows = append(rows, JoinedRow{
			Device:             deviceName,
			InstanceName:       e.InstanceName,
			InstanceID:         e.InstanceID,
			AdminState:         e.AdminState,
			VXLANInterface:     e.VXLANInterface,
			EVI:                e.EVI,
			ECMP:               e.ECMP,
			OperState:          e.OperState,
			RouteDistinguisher: v.RouteDistinguisher,
			ImportRT:           v.ImportRT,
			ExportRT:           v.ExportRT,
		})
	}
	return rows
}
