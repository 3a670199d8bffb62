// internal/cli/diefk.go
package cli

import (
	"fmt"

	"github.com/mwiater/dief/internal/logging"
	"github.com/mwiater/dief/internal/metrics"
	"github.com/mwiater/dief/internal/report"
	"github.com/spf13/cobra"
)

var diefkOpts struct {
	test string
	k    float64
	kp   float64
}

// diefkCmd implements 'diefk', which computes dief@k for every approach of one test.
var diefkCmd = &cobra.Command{
	Use:   "diefk",
	Short: "Compute dief@k for one test",
	Long: `Compute dief@k, the area under the answer curve up to the k-th answer, for
every approach of a test. Without --k the smallest answer count among the
approaches is used. --kp gives k as a fraction of that default instead.
Lower is better.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, kp := metrics.FromSentinel(diefkOpts.k), metrics.FromSentinel(diefkOpts.kp)
		if v, ok := k.Value(); ok && v < 0 {
			return fmt.Errorf("--k must be >= 0 (or -1 for the default), got %g", v)
		}
		if v, ok := kp.Value(); ok && (v < 0 || v > 1) {
			return fmt.Errorf("--kp must be between 0 and 1 (or -1 for the default), got %g", v)
		}

		cfg := resolvedConfig()
		set, err := loadTraceSet(cfg)
		if err != nil {
			return err
		}

		var (
			results []metrics.Result
			bound   metrics.Bound
			label   string
		)
		if kp.IsSet() {
			results, bound, label = metrics.DiefKPercent(set, diefkOpts.test, kp), kp, "kp"
		} else {
			results, bound, label = metrics.DiefK(set, diefkOpts.test, k), k, "k"
		}
		if len(results) == 0 {
			return fmt.Errorf("test %q not found in %s", diefkOpts.test, cfg.Traces)
		}
		logging.LogComputation("diefk", diefkOpts.test, label+"="+bound.String(), len(results))

		title := fmt.Sprintf("dief@k %s (%s = %s)", diefkOpts.test, label, bound)
		return writeTables(cmd.OutOrStdout(), cfg, "", report.FromResults(title, "diefk", results))
	},
}

func init() {
	diefkCmd.Flags().StringVar(&diefkOpts.test, "test", "", "test to evaluate (required)")
	diefkCmd.Flags().Float64Var(&diefkOpts.k, "k", metrics.Sentinel, "answer limit; -1 uses the smallest answer count among approaches")
	diefkCmd.Flags().Float64Var(&diefkOpts.kp, "kp", metrics.Sentinel, "answer limit as a fraction of the default k; -1 means 1.0")
	_ = diefkCmd.MarkFlagRequired("test")
	diefkCmd.MarkFlagsMutuallyExclusive("k", "kp")

	rootCmd.AddCommand(diefkCmd)
}
