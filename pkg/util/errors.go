// Package util provides logging helpers and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure categories the poller distinguishes.
// Connection and protocol failures degrade a device to zero records;
// schema failures are surfaced per device; config failures abort startup.
var (
	ErrConnection = errors.New("device connection failed")
	ErrProtocol   = errors.New("malformed protocol response")
	ErrSchema     = errors.New("required field missing")
	ErrConfig     = errors.New("invalid configuration")
)

// SchemaError reports a required field absent from an otherwise-present
// routing instance. Unlike transport failures these propagate up: a device
// that answers with broken data should be diagnosed, not silently emptied.
type SchemaError struct {
	Instance string
	Field    string
}

func (e *SchemaError) Error() string {
	if e.Instance == "" {
		return fmt.Sprintf("required field %q missing", e.Field)
	}
	return fmt.Sprintf("instance %q: required field %q missing", e.Instance, e.Field)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NewSchemaError creates a schema error for a missing required field.
func NewSchemaError(instance, field string) *SchemaError {
	return &SchemaError{Instance: instance, Field: field}
}

// ConfigError reports required keys absent from the roster file.
type ConfigError struct {
	Path    string
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required key(s): %s", e.Path, strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// NewConfigError creates a config error listing the missing keys.
func NewConfigError(path string, missing ...string) *ConfigError {
	return &ConfigError{Path: path, Missing: missing}
}
