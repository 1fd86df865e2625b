package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tool configuration
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Placement PlacementConfig `yaml:"placement"`
	Host      HostConfig      `yaml:"host"`
	// CatalogPath points at a component catalog file; empty uses the
	// built-in catalog
	CatalogPath string `yaml:"catalog"`
}

// GridConfig holds grid geometry settings
type GridConfig struct {
	CellSizeMin float64 `yaml:"cell_size_min"`
	CellSizeMax float64 `yaml:"cell_size_max"`
	CellSize    float64 `yaml:"cell_size"`
	MajorEvery  int     `yaml:"major_every"` // every Nth line is major, display only
}

// PlacementConfig holds interaction tuning
type PlacementConfig struct {
	DebounceSeconds float64 `yaml:"debounce_seconds"` // hysteresis threshold
	Margin          float64 `yaml:"margin"`           // candidate bounds expansion
}

// HostConfig holds frontend settings
type HostConfig struct {
	TickRate    int     `yaml:"tick_rate"` // Hz
	FloorWidth  float64 `yaml:"floor_width"`
	FloorLength float64 `yaml:"floor_length"`
	LogFile     string  `yaml:"log_file"`
	Audio       bool    `yaml:"audio"`
}

// Default returns the configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellSizeMin: 0.1,
			CellSizeMax: 10.0,
			CellSize:    1.0,
			MajorEvery:  5,
		},
		Placement: PlacementConfig{
			DebounceSeconds: 0.3,
			Margin:          0.05,
		},
		Host: HostConfig{
			TickRate:    60,
			FloorWidth:  10,
			FloorLength: 10,
			LogFile:     "floorplan.log",
			Audio:       true,
		},
	}
}

// Load reads configuration from a YAML file, overlaying the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Grid.CellSizeMin <= 0 || c.Grid.CellSizeMax < c.Grid.CellSizeMin {
		return fmt.Errorf("invalid cell size bounds [%g, %g]",
			c.Grid.CellSizeMin, c.Grid.CellSizeMax)
	}
	if c.Placement.DebounceSeconds < 0 {
		return fmt.Errorf("negative debounce %g", c.Placement.DebounceSeconds)
	}
	if c.Host.TickRate < 1 {
		return fmt.Errorf("tick rate %d below 1Hz", c.Host.TickRate)
	}
	if c.Host.FloorWidth <= 0 || c.Host.FloorLength <= 0 {
		return fmt.Errorf("degenerate floor %gx%g", c.Host.FloorWidth, c.Host.FloorLength)
	}
	return nil
}
