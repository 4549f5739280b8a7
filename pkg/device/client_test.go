package device

import (
	"context"
	"testing"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
)

func jsonIetfUpdate(payload string) *gpb.Update {
	return &gpb.Update{
		Val: &gpb.TypedValue{
			Value: &gpb.TypedValue_JsonIetfVal{JsonIetfVal: []byte(payload)},
		},
	}
}

func TestDecodeNotifications(t *testing.T) {
	notifications := []*gpb.Notification{{
		Update: []*gpb.Update{jsonIetfUpdate(`{
			"srl_nokia-network-instance:network-instance": [
				{"name": "default"},
				{"name": "mgmt"}
			]
		}`)},
	}}

	instances, err := decodeNotifications(notifications)
	if err != nil {
		t.Fatalf("decodeNotifications() error: %v", err)
	}
	if len(instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(instances))
	}
	if instances[0]["name"] != "default" || instances[1]["name"] != "mgmt" {
		t.Errorf("instances out of order: %v", instances)
	}
}

func TestDecodeNotifications_MissingCollectionKey(t *testing.T) {
	// An update without the network-instance key contributes nothing.
	notifications := []*gpb.Notification{{
		Update: []*gpb.Update{
			jsonIetfUpdate(`{"some-other:key": [{"name": "ignored"}]}`),
			jsonIetfUpdate(`{"srl_nokia-network-instance:network-instance": [{"name": "default"}]}`),
		},
	}}

	instances, err := decodeNotifications(notifications)
	if err != nil {
		t.Fatalf("decodeNotifications() error: %v", err)
	}
	if len(instances) != 1 || instances[0]["name"] != "default" {
		t.Errorf("expected only the keyed update's instance, got %v", instances)
	}
}

func TestDecodeNotifications_MalformedJSON(t *testing.T) {
	notifications := []*gpb.Notification{{
		Update: []*gpb.Update{jsonIetfUpdate(`{not json`)},
	}}
	if _, err := decodeNotifications(notifications); err == nil {
		t.Error("expected a decode error for malformed JSON")
	}
}

func TestDecodeNotifications_EmptyAndNilValues(t *testing.T) {
	notifications := []*gpb.Notification{
		{Update: []*gpb.Update{{Val: &gpb.TypedValue{}}}},
		{},
		nil,
	}
	instances, err := decodeNotifications(notifications)
	if err != nil {
		t.Fatalf("decodeNotifications() error: %v", err)
	}
	if len(instances) != 0 {
		t.Errorf("expected no instances, got %d", len(instances))
	}
}

func TestDecodeNotifications_JsonValFallback(t *testing.T) {
	// Some targets answer JSON instead of JSON_IETF.
	notifications := []*gpb.Notification{{
		Update: []*gpb.Update{{
			Val: &gpb.TypedValue{
				Value: &gpb.TypedValue_JsonVal{
					JsonVal: []byte(`{"srl_nokia-network-instance:network-instance": [{"name": "default"}]}`),
				},
			},
		}},
	}}
	instances, err := decodeNotifications(notifications)
	if err != nil {
		t.Fatalf("decodeNotifications() error: %v", err)
	}
	if len(instances) != 1 {
		t.Errorf("expected 1 instance from JSON value, got %d", len(instances))
	}
}

func TestGnmiPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"network-instance/protocols/bgp-evpn/bgp-instance", []string{"network-instance", "protocols", "bgp-evpn", "bgp-instance"}},
		{"/network-instance/", []string{"network-instance"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := gnmiPath(tt.path)
		if len(got.Elem) != len(tt.want) {
			t.Errorf("gnmiPath(%q) has %d elems, want %d", tt.path, len(got.Elem), len(tt.want))
			continue
		}
		for i, name := range tt.want {
			if got.Elem[i].Name != name {
				t.Errorf("gnmiPath(%q) elem %d = %q, want %q", tt.path, i, got.Elem[i].Name, name)
			}
		}
	}
}

func TestPasswordCreds(t *testing.T) {
	creds := &passwordCreds{username: "admin", password: "secret"}
	md, err := creds.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata() error: %v", err)
	}
	if md["username"] != "admin" || md["password"] != "secret" {
		t.Errorf("metadata = %v", md)
	}
	if creds.RequireTransportSecurity() {
		t.Error("RequireTransportSecurity() should be false for self-signed lab targets")
	}
}
