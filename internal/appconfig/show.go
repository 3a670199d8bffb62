package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Traces:          %s\n", orNone(cfg.Traces))
	fmt.Fprintf(out, "  Metrics:         %s\n", orNone(cfg.Metrics))
	fmt.Fprintf(out, "  Format:          %s\n", cfg.OutputFormat())
	fmt.Fprintf(out, "  Continue To End: %v\n", cfg.ContinueToEnd)
	fmt.Fprintf(out, "  Workers:         %s\n", workersLabel(cfg.Workers))
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
}

func orNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func workersLabel(n int) string {
	if n <= 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", n)
}
