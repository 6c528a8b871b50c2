// YAML tool configuration with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"droneops-deconflict/internal/deconflict"
)

// Output controls where detection results are written.
type Output struct {
	// Color selects the console writer: auto, always, or never.
	Color string `yaml:"color"`
	// LogFile, when set, receives every conflict record as JSONL.
	LogFile string `yaml:"log_file"`
	// HTML, when set, receives the rendered trajectory page.
	HTML string `yaml:"html"`
}

// Greptime configures the optional GreptimeDB conflict sink.
type Greptime struct {
	Endpoint string `yaml:"endpoint"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
}

// Config is the root configuration for deconfliction runs.
type Config struct {
	SafetyBuffer float64  `yaml:"safety_buffer"`
	Parallel     bool     `yaml:"parallel"`
	Prefilter    bool     `yaml:"prefilter"`
	Output       Output   `yaml:"output"`
	Greptime     Greptime `yaml:"greptime"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		SafetyBuffer: deconflict.DefaultSafetyBuffer,
		Output:       Output{Color: "auto"},
		Greptime:     Greptime{Database: "public"},
	}
}

// Load reads a YAML config, validates it against the CUE schema, and fills
// in defaults for omitted values.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.SafetyBuffer <= 0 {
		cfg.SafetyBuffer = deconflict.DefaultSafetyBuffer
	}
	switch cfg.Output.Color {
	case "", "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid output.color %q", cfg.Output.Color)
	}
	return cfg, nil
}
