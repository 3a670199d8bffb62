// internal/cli/traces.go
package cli

import (
	"github.com/mwiater/dief/internal/logging"
	"github.com/mwiater/dief/internal/metrics"
	"github.com/mwiater/dief/internal/report"
	"github.com/spf13/cobra"
)

// tracesCmd implements 'traces', which summarizes the loaded traces per (test, approach).
var tracesCmd = &cobra.Command{
	Use:   "traces",
	Short: "Summarize the answer traces per test and approach",
	Long: `List every (test, approach) pair in the traces file with the conventional
metrics derived from it: time of the first answer, time of the last answer
and the number of answers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolvedConfig()
		set, err := loadTraceSet(cfg)
		if err != nil {
			return err
		}
		rows := metrics.DeriveMetrics(set)
		logging.LogComputation("traces", "", "", len(rows))
		return writeTables(cmd.OutOrStdout(), cfg, "", report.FromMetrics("trace inventory", rows))
	},
}

func init() {
	rootCmd.AddCommand(tracesCmd)
}
