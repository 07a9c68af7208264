package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Algorithm string `yaml:"algorithm"` // fcfs (by default), or "all"
	Quantum   int    `yaml:"quantum"`   // 2 (by default), round-robin slice
	TickMS    int    `yaml:"tick_ms"`   // 200 (by default), replay speed
	Listen    string `yaml:"listen"`    // ":9095" (by default)
	TraceCSV  string `yaml:"trace_csv"` // empty = no trace file
	SVG       string `yaml:"svg"`       // empty = no chart file

	// HTTP request bounds
	MaxProcesses int `yaml:"max_processes"` // 100 (by default)
	MaxTime      int `yaml:"max_time"`      // 100000 (by default), latest arrival + total burst
}

// If the config file is not found, we use default values
func Default() Config {
	return Config{
		Algorithm: "fcfs",
		Quantum:   2,
		TickMS:    200,
		Listen:    ":9095",

		MaxProcesses: 100,
		MaxTime:      100000,
	}
}

// Load reads YAML and overrides defaults; empty path or a missing file = defaults only
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	// sanity clamps
	if cfg.Algorithm == "" {
		cfg.Algorithm = "fcfs"
	}
	if cfg.Quantum <= 0 {
		cfg.Quantum = 2
	}
	if cfg.TickMS <= 0 {
		cfg.TickMS = 200
	}
	if cfg.Listen == "" {
		cfg.Listen = ":9095"
	}
	if cfg.MaxProcesses <= 0 {
		cfg.MaxProcesses = 100
	}
	if cfg.MaxTime <= 0 {
		cfg.MaxTime = 100000
	}

	return cfg, nil
}
