// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestValidate verifies the defaults pass and out of range values are reported by field.
func TestValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if !cfg.ContinueToEnd || cfg.OutputFormat() != "table" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	for _, format := range []string{"", "table", "csv", "json", "yaml"} {
		cfg := Config{Format: format}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("format %q should validate: %v", format, err)
		}
	}

	bad := Config{Format: "xml"}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "Format") {
		t.Fatalf("expected error naming Format, got %v", err)
	}
	bad = Config{Workers: -2}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "Workers") {
		t.Fatalf("expected error naming Workers, got %v", err)
	}
	bad = Config{Workers: 5000}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for out of range workers")
	}
}

func TestResolvePathFallsBackToLegacy(t *testing.T) {
	dir := chdirTemp(t)
	writeConfig(t, dir, "dief.json", `{"metrics": "m.csv"}`)

	path, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath error: %v", err)
	}
	if path != "dief.json" {
		t.Fatalf("expected legacy path, got %s", path)
	}

	if err := os.Remove("dief.json"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err = ResolvePath("")
	if !errors.Is(err, ErrConfigNotFound) || !strings.Contains(err.Error(), "dief.json") {
		t.Fatalf("expected missing config error naming both paths, got %v", err)
	}
}

func TestAccessorDefaults(t *testing.T) {
	var cfg Config
	if cfg.LogFilePath() != "dief.log" {
		t.Fatalf("expected default log file, got %s", cfg.LogFilePath())
	}
	cfg.Format = " CSV "
	if cfg.OutputFormat() != "csv" {
		t.Fatalf("expected normalized format, got %q", cfg.OutputFormat())
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Defaults())
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") || !strings.Contains(out, "Traces:          (not set)") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "Workers:         auto") {
		t.Fatalf("expected auto workers, got: %s", out)
	}

	buf.Reset()
	cfg := Config{Traces: "t.csv", Workers: 2, Format: "json"}
	ShowConfig(&buf, "config.json", &cfg, Defaults())
	out = buf.String()
	if !strings.Contains(out, "Config file: config.json") || !strings.Contains(out, "Format:          json") {
		t.Fatalf("unexpected output: %s", out)
	}
}
