package util

import (
	"errors"
	"strings"
	"testing"
)

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("default", "evi")

	msg := err.Error()
	if !strings.Contains(msg, "default") {
		t.Errorf("Error message should contain instance: %s", msg)
	}
	if !strings.Contains(msg, "evi") {
		t.Errorf("Error message should contain field: %s", msg)
	}

	if !errors.Is(err, ErrSchema) {
		t.Error("SchemaError should unwrap to ErrSchema")
	}
}

func TestSchemaError_NoInstance(t *testing.T) {
	err := NewSchemaError("", "name")
	msg := err.Error()
	if strings.Contains(msg, "instance") {
		t.Errorf("message should omit the instance part when unknown: %s", msg)
	}
	if !strings.Contains(msg, "name") {
		t.Errorf("message should contain the field: %s", msg)
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("nodes.yml", "username", "gnmi_port")

	msg := err.Error()
	if !strings.Contains(msg, "nodes.yml") {
		t.Errorf("Error message should contain the path: %s", msg)
	}
	if !strings.Contains(msg, "username") || !strings.Contains(msg, "gnmi_port") {
		t.Errorf("Error message should list missing keys: %s", msg)
	}

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should unwrap to ErrConfig")
	}
}
