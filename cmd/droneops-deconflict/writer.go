package main

import (
	"os"

	"golang.org/x/term"

	"droneops-deconflict/internal/config"
	"droneops-deconflict/internal/report"
)

// newWriters assembles the record writer chain from config and flags. The
// returned cleanup closes any file or database resources.
func newWriters(cfg *config.Config, jsonOut bool, runID string) (report.RecordWriter, func(), error) {
	cleanup := func() {}

	writers := []report.RecordWriter{consoleWriter(cfg, jsonOut)}

	var closers []func()
	if cfg.Output.LogFile != "" {
		fw, err := report.NewFileWriter(cfg.Output.LogFile, cfg.Output.LogFile+".result")
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, fw)
		closers = append(closers, func() { fw.Close() })
	}

	endpoint := cfg.Greptime.Endpoint
	if env := os.Getenv("GREPTIMEDB_ENDPOINT"); env != "" {
		endpoint = env
	}
	if endpoint != "" {
		gw, err := report.NewGreptimeDBWriter(endpoint, cfg.Greptime.Database, cfg.Greptime.Table, runID)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		writers = append(writers, gw)
	}

	if len(closers) > 0 {
		cleanup = func() {
			for _, c := range closers {
				c()
			}
		}
	}
	if len(writers) == 1 {
		return writers[0], cleanup, nil
	}
	return report.NewMultiWriter(writers...), cleanup, nil
}

// consoleWriter picks colored or JSON console output. Color is used on
// terminals unless overridden by config or the --json flag.
func consoleWriter(cfg *config.Config, jsonOut bool) report.RecordWriter {
	if jsonOut {
		return report.NewJSONWriter()
	}
	switch cfg.Output.Color {
	case "always":
		return report.NewColorWriter()
	case "never":
		return report.NewJSONWriter()
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return report.NewColorWriter()
	}
	return report.NewJSONWriter()
}
