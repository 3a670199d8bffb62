// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the configuration file looked up when the default path is absent.
	legacyConfigPath = "dief.json"
	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = "table"
	// defaultLogFile is the log file used when none is configured.
	defaultLogFile = "dief.log"
)

// validate is shared by all Config validations.
var validate = validator.New()

// Config represents the top-level application configuration.
type Config struct {
	Traces        string `json:"traces,omitempty"`
	Metrics       string `json:"metrics,omitempty"`
	Format        string `json:"format,omitempty" validate:"omitempty,oneof=table csv json yaml"`
	LogFile       string `json:"logFile,omitempty"`
	ContinueToEnd bool   `json:"continueToEnd"`
	Debug         bool   `json:"debug"`
	Workers       int    `json:"workers,omitempty" validate:"gte=0,lte=1024"`
	ConfigPath    string `json:"-"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Format:        DefaultFormat,
		ContinueToEnd: true,
	}
}

// OutputFormat returns the configured output format, falling back to the default.
func (c Config) OutputFormat() string {
	if f := strings.ToLower(strings.TrimSpace(c.Format)); f != "" {
		return f
	}
	return DefaultFormat
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(details, "; "))
}

// ErrConfigNotFound is returned by ResolvePath when no configuration file exists.
var ErrConfigNotFound = errors.New("no configuration file found")

// ResolvePath returns the configuration file to read. An empty path means the
// default location, falling back to the legacy file when the default is absent.
func ResolvePath(path string) (string, error) {
	candidates := []string{path}
	if path == "" || path == DefaultConfigPath {
		candidates = []string{DefaultConfigPath, legacyConfigPath}
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("could not read config file %q: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("%w (searched %s)", ErrConfigNotFound, quoteAll(candidates))
}

func quoteAll(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, " and ")
}
