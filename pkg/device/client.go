// Package device issues one-shot gNMI reads against individual switches
// and decodes the response notifications into raw routing-instance trees.
package device

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/evpn-tools/evpnscan/pkg/roster"
	"github.com/evpn-tools/evpnscan/pkg/util"
)

// collectionKey is the vendor namespace under which SR Linux reports the
// network-instance list in JSON_IETF payloads.
const collectionKey = "srl_nokia-network-instance:network-instance"

// DefaultTimeout bounds a single Get including dial time.
const DefaultTimeout = 30 * time.Second

// RawInstance is one decoded routing-instance sub-tree.
type RawInstance map[string]any

// Status classifies a fetch outcome so callers can tell "no instances"
// apart from "fetch failed".
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusFailed
)

// FetchResult is the outcome of one path read against one device.
// A failed fetch carries its error here rather than aborting the run:
// one unreachable device degrades to zero records.
type FetchResult struct {
	Device    string
	Path      string
	Status    Status
	Instances []RawInstance
	Err       error
}

// Client issues gNMI Get requests. One session is opened per call and
// closed before returning; nothing is pooled across calls.
type Client struct {
	Timeout time.Duration
}

// NewClient creates a client with the given per-query timeout.
// A zero timeout means DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{Timeout: timeout}
}

// FetchInstances reads one structured path from a device and returns the
// routing-instance trees found in the response. Transport and protocol
// failures are logged and reported in the result, never returned as an
// error to the caller.
func (c *Client) FetchInstances(ctx context.Context, dev roster.Device, path string) FetchResult {
	res := FetchResult{Device: dev.Name, Path: path}

	release := transportQuiet.Acquire()
	defer release()

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	conn, err := grpc.NewClient(dev.Address(),
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
			InsecureSkipVerify: dev.SkipVerify,
		})),
		grpc.WithPerRPCCredentials(&passwordCreds{
			username: dev.Username,
			password: dev.Password,
		}),
	)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: %s: %v", util.ErrConnection, dev.Address(), err)
		util.WithDevice(dev.Name).Warnf("connect: %v", err)
		return res
	}
	defer conn.Close()

	resp, err := gpb.NewGNMIClient(conn).Get(ctx, &gpb.GetRequest{
		Path:     []*gpb.Path{gnmiPath(path)},
		Type:     gpb.GetRequest_ALL,
		Encoding: gpb.Encoding_JSON_IETF,
	})
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: get %s: %v", util.ErrConnection, path, err)
		util.WithDevice(dev.Name).Warnf("get %s: %v", path, err)
		return res
	}

	instances, err := decodeNotifications(resp.GetNotification())
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: %v", util.ErrProtocol, err)
		util.WithDevice(dev.Name).Warnf("decode %s: %v", path, err)
		return res
	}

	res.Instances = instances
	if len(instances) == 0 {
		res.Status = StatusEmpty
	}
	return res
}

// decodeNotifications walks the update notifications and flattens every
// network-instance entry found under the vendor collection key. Updates
// without that key contribute nothing; malformed JSON payloads are a
// protocol error.
func decodeNotifications(notifications []*gpb.Notification) ([]RawInstance, error) {
	var instances []RawInstance
	for _, notif := range notifications {
		for _, upd := range notif.GetUpdate() {
			raw := upd.GetVal().GetJsonIetfVal()
			if len(raw) == 0 {
				raw = upd.GetVal().GetJsonVal()
			}
			if len(raw) == 0 {
				continue
			}

			var tree map[string]any
			if err := json.Unmarshal(raw, &tree); err != nil {
				return nil, fmt.Errorf("decoding update value: %v", err)
			}

			entries, ok := tree[collectionKey].([]any)
			if !ok {
				continue
			}
			for _, entry := range entries {
				if inst, ok := entry.(map[string]any); ok {
					instances = append(instances, RawInstance(inst))
				}
			}
		}
	}
	return instances, nil
}

// gnmiPath converts a slash-separated path into gNMI path elements.
func gnmiPath(path string) *gpb.Path {
	var elems []*gpb.PathElem
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		elems = append(elems, &gpb.PathElem{Name: name})
	}
	return &gpb.Path{Elem: elems}
}

// passwordCreds carries username/password metadata on each RPC, the way
// SR Linux and most gNMI targets expect them.
type passwordCreds struct {
	username string
	password string
}

func (c *passwordCreds) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{
		"username": c.username,
		"password": c.password,
	}, nil
}

// RequireTransportSecurity returns false so the same credentials work
// against lab targets with self-signed certificates.
func (c *passwordCreds) RequireTransportSecurity() bool {
	return false
}
