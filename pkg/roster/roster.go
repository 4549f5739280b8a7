// Package roster loads the device roster: the list of switches to poll,
// with the shared gNMI port, credentials, and TLS-verification policy.
package roster

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/evpn-tools/evpnscan/pkg/util"
)

// Defaults for descriptive device tags. These are metadata carried on the
// report, never branched on.
const (
	DefaultModel   = "ixrd3"
	DefaultRelease = "21.6.4"
)

// Device describes one switch to poll. Constructed once from the roster
// file, read-only thereafter.
type Device struct {
	Name       string
	Port       int
	Username   string
	Password   string
	SkipVerify bool
	Model      string
	Release    string
}

// Address returns the host:port gNMI target for the device.
func (d Device) Address() string {
	return net.JoinHostPort(d.Name, strconv.Itoa(d.Port))
}

// rosterFile is the YAML shape of the roster:
//
//	switches:
//	  srl: [leaf1, leaf2]
//	username: admin
//	password: admin
//	gnmi_port: 57400
//	skip_verify: true
type rosterFile struct {
	Switches struct {
		SRL []string `yaml:"srl"`
	} `yaml:"switches"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	GNMIPort   int    `yaml:"gnmi_port"`
	SkipVerify *bool  `yaml:"skip_verify"`
	Model      string `yaml:"model"`
	Release    string `yaml:"release"`
}

// Load parses a roster YAML file into a device list. Missing required keys
// are fatal; the caller aborts before any device is contacted.
func Load(path string) ([]Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading roster: %v", util.ErrConfig, err)
	}

	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("%w: parsing roster %s: %v", util.ErrConfig, path, err)
	}

	var missing []string
	if len(rf.Switches.SRL) == 0 {
		missing = append(missing, "switches.srl")
	}
	if rf.Username == "" {
		missing = append(missing, "username")
	}
	if rf.GNMIPort == 0 {
		missing = append(missing, "gnmi_port")
	}
	if len(missing) > 0 {
		return nil, util.NewConfigError(path, missing...)
	}

	skipVerify := true
	if rf.SkipVerify != nil {
		skipVerify = *rf.SkipVerify
	}
	model := rf.Model
	if model == "" {
		model = DefaultModel
	}
	release := rf.Release
	if release == "" {
		release = DefaultRelease
	}

	devices := make([]Device, 0, len(rf.Switches.SRL))
	for _, name := range rf.Switches.SRL {
		devices = append(devices, Device{
			Name:       name,
			Port:       rf.GNMIPort,
			Username:   rf.Username,
			Password:   rf.Password,
			SkipVerify: skipVerify,
			Model:      model,
			Release:    release,
		})
	}
	return devices, nil
}
