// internal/cli/dieft.go
package cli

import (
	"fmt"

	"github.com/mwiater/dief/internal/logging"
	"github.com/mwiater/dief/internal/metrics"
	"github.com/mwiater/dief/internal/report"
	"github.com/spf13/cobra"
)

var dieftOpts struct {
	test       string
	t          float64
	noContinue bool
}

// dieftCmd implements 'dieft', which computes dief@t for every approach of one test.
var dieftCmd = &cobra.Command{
	Use:   "dieft",
	Short: "Compute dief@t for one test",
	Long: `Compute dief@t, the area under the answer curve up to time t, for every
approach of a test. Without --t the test's latest answer time is used. Curves
are extended flat to t unless --no-continue is given. Higher is better.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolvedConfig()
		set, err := loadTraceSet(cfg)
		if err != nil {
			return err
		}

		opts := metrics.TOptions{
			Time:          metrics.FromSentinel(dieftOpts.t),
			ContinueToEnd: cfg.ContinueToEnd && !dieftOpts.noContinue,
		}
		results := metrics.DiefT(set, dieftOpts.test, opts)
		if len(results) == 0 {
			return fmt.Errorf("test %q not found in %s", dieftOpts.test, cfg.Traces)
		}
		logging.LogComputation("dieft", dieftOpts.test, opts.Time.String(), len(results))

		title := fmt.Sprintf("dief@t %s (t = %s)", dieftOpts.test, opts.Time)
		return writeTables(cmd.OutOrStdout(), cfg, "dieft", report.FromResults(title, "dieft", results))
	},
}

func init() {
	dieftCmd.Flags().StringVar(&dieftOpts.test, "test", "", "test to evaluate (required)")
	dieftCmd.Flags().Float64Var(&dieftOpts.t, "t", metrics.Sentinel, "time limit; -1 uses the test's latest answer time")
	dieftCmd.Flags().BoolVar(&dieftOpts.noContinue, "no-continue", false, "do not extend curves flat to t")
	_ = dieftCmd.MarkFlagRequired("test")

	rootCmd.AddCommand(dieftCmd)
}
