package config

import (
	"os"
	"path/filepath"
	"testing"

	"droneops-deconflict/internal/deconflict"
)

const testSchema = `
safety_buffer?: number & >0
parallel?:      bool
prefilter?:     bool
output?: {
	color?:    "auto" | "always" | "never"
	log_file?: string
	html?:     string
}
greptime?: {
	endpoint?: string
	database?: string
	table?:    string
}
`

func writeConfigFiles(t *testing.T, yaml string) (cfgPath, schemaPath string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "deconflict.yaml")
	schemaPath = filepath.Join(dir, "deconflict.cue")
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := os.WriteFile(schemaPath, []byte(testSchema), 0644); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}
	return cfgPath, schemaPath
}

func TestLoadConfig_Valid(t *testing.T) {
	cfgPath, schemaPath := writeConfigFiles(t, `
safety_buffer: 75.5
parallel: true
output:
  color: never
  log_file: conflicts.jsonl
greptime:
  endpoint: greptimedb:4001
  table: drone_conflicts
`)

	cfg, err := Load(cfgPath, schemaPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SafetyBuffer != 75.5 {
		t.Errorf("expected buffer 75.5, got %f", cfg.SafetyBuffer)
	}
	if !cfg.Parallel {
		t.Errorf("expected parallel to be enabled")
	}
	if cfg.Output.Color != "never" || cfg.Output.LogFile != "conflicts.jsonl" {
		t.Errorf("unexpected output config: %+v", cfg.Output)
	}
	if cfg.Greptime.Endpoint != "greptimedb:4001" {
		t.Errorf("unexpected greptime config: %+v", cfg.Greptime)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfgPath, schemaPath := writeConfigFiles(t, "parallel: false\n")

	cfg, err := Load(cfgPath, schemaPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SafetyBuffer != deconflict.DefaultSafetyBuffer {
		t.Errorf("expected default buffer, got %f", cfg.SafetyBuffer)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("expected auto color, got %q", cfg.Output.Color)
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	cfgPath, schemaPath := writeConfigFiles(t, "safety_buffer: -3\n")
	if _, err := Load(cfgPath, schemaPath); err == nil {
		t.Errorf("expected schema validation error for negative buffer")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SafetyBuffer != deconflict.DefaultSafetyBuffer {
		t.Errorf("expected default buffer, got %f", cfg.SafetyBuffer)
	}
	if cfg.Greptime.Database != "public" {
		t.Errorf("expected public database, got %q", cfg.Greptime.Database)
	}
}
