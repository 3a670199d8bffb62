// internal/cli/output.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mwiater/dief/internal/appconfig"
	"github.com/mwiater/dief/internal/logging"
	"github.com/mwiater/dief/internal/metrics"
	"github.com/mwiater/dief/internal/report"
	"github.com/mwiater/dief/internal/trace"
)

var (
	bestLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	approachName = color.New(color.FgCyan).SprintFunc()
)

// errNoTraces is returned by commands that need a traces file when none is configured.
var errNoTraces = errors.New(`no traces file configured: pass --traces or set "traces" in the config file`)

// resolvedConfig returns the configuration built by the root command, or the
// defaults when a command runs without it.
func resolvedConfig() appconfig.Config {
	if cfg := GetConfig(); cfg != nil {
		return *cfg
	}
	return appconfig.Defaults()
}

// loadTraceSet reads the configured traces file into an indexed set.
func loadTraceSet(cfg appconfig.Config) (*trace.Set, error) {
	if cfg.Traces == "" {
		return nil, errNoTraces
	}
	records, err := trace.Load(cfg.Traces)
	if err != nil {
		return nil, fmt.Errorf("load traces: %w", err)
	}
	set := trace.NewSet(records)
	logging.LogEvent("loaded %d trace records for %d tests from %s", set.Len(), len(set.Tests()), cfg.Traces)
	return set, nil
}

// loadMetricRecords reads the configured metrics file, or derives the
// conventional metrics from the traces when derive is set.
func loadMetricRecords(cfg appconfig.Config, set *trace.Set, derive bool) ([]trace.MetricRecord, error) {
	if derive {
		rows := metrics.DeriveMetrics(set)
		logging.LogEvent("derived conventional metrics for %d (test, approach) pairs", len(rows))
		return rows, nil
	}
	if cfg.Metrics == "" {
		return nil, errors.New(`no metrics file configured: pass --metrics, set "metrics" in the config file or use --derive-metrics`)
	}
	rows, err := trace.LoadMetrics(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}
	logging.LogEvent("loaded %d metric records from %s", len(rows), cfg.Metrics)
	return rows, nil
}

// newAnalyzer returns an Analyzer that logs each finished test.
func newAnalyzer(cfg appconfig.Config) metrics.Analyzer {
	return metrics.Analyzer{
		Workers: cfg.Workers,
		Progress: func(test string, rows int) {
			logging.LogMetricsEvent("test=%s rows=%d done", test, rows)
		},
	}
}

// writeTables renders tables in the configured format. In table format the
// best approach per test for valueCol follows the tables.
func writeTables(out io.Writer, cfg appconfig.Config, valueCol string, tables ...report.Table) error {
	format := cfg.OutputFormat()
	if err := report.NewRenderer(format).Render(out, tables...); err != nil {
		return err
	}
	if format != report.FormatTable || valueCol == "" {
		return nil
	}
	for _, t := range tables {
		for _, h := range report.Best(t, "test", "approach", valueCol) {
			fmt.Fprintf(out, "%s %s: %s (%s = %.4f)\n", bestLabel("best"), h.Group, approachName(h.Label), valueCol, h.Value)
		}
	}
	return nil
}
