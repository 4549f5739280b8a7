package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evpn-tools/evpnscan/pkg/report"
)

func TestSettings_Defaults(t *testing.T) {
	s := &Settings{}

	if s.DefaultRoster != "" {
		t.Errorf("DefaultRoster should be empty, got %q", s.DefaultRoster)
	}
	if got := s.GetParallel(); got != report.DefaultParallel {
		t.Errorf("GetParallel() default = %d, want %d", got, report.DefaultParallel)
	}
}

func TestSettings_SettersGetters(t *testing.T) {
	s := &Settings{}

	s.SetRoster("nodes.yml")
	if s.DefaultRoster != "nodes.yml" {
		t.Errorf("SetRoster() failed, got %q", s.DefaultRoster)
	}

	s.SetParallel(16)
	if s.GetParallel() != 16 {
		t.Errorf("SetParallel() failed, got %d", s.GetParallel())
	}
}

func TestSettings_Clear(t *testing.T) {
	s := &Settings{DefaultRoster: "nodes.yml", Parallel: 16}

	s.Clear()

	if s.DefaultRoster != "" || s.Parallel != 0 {
		t.Error("Clear() should reset all fields to empty")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := &Settings{DefaultRoster: "dc1-nodes.yml", Parallel: 4}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.DefaultRoster != "dc1-nodes.yml" || loaded.Parallel != 4 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestSettings_LoadMissingFile(t *testing.T) {
	loaded, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should yield empty settings, got error: %v", err)
	}
	if loaded.DefaultRoster != "" || loaded.Parallel != 0 {
		t.Errorf("expected empty settings, got %+v", loaded)
	}
}

func TestSettings_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected an error for corrupt settings")
	}
}
