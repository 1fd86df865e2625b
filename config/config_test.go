package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Grid.CellSizeMin != 0.1 || cfg.Grid.CellSizeMax != 10.0 {
		t.Errorf("Expected cell size bounds [0.1, 10], got [%g, %g]",
			cfg.Grid.CellSizeMin, cfg.Grid.CellSizeMax)
	}
	if cfg.Placement.DebounceSeconds != 0.3 {
		t.Errorf("Expected 0.3s debounce, got %g", cfg.Placement.DebounceSeconds)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
grid:
  cell_size: 0.5
host:
  floor_width: 8
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Grid.CellSize != 0.5 {
		t.Errorf("Expected overridden cell size 0.5, got %g", cfg.Grid.CellSize)
	}
	if cfg.Host.FloorWidth != 8 {
		t.Errorf("Expected overridden floor width 8, got %g", cfg.Host.FloorWidth)
	}
	// Untouched values keep their defaults
	if cfg.Grid.MajorEvery != 5 {
		t.Errorf("Expected default major interval 5, got %d", cfg.Grid.MajorEvery)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestLoadRejectsBadBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
grid:
  cell_size_min: 5
  cell_size_max: 1
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Expected validation error for inverted bounds")
	}
}

func TestLoadRejectsDegenerateFloor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
host:
  floor_width: 0
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Expected validation error for zero-width floor")
	}
}
