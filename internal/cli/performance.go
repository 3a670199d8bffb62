// internal/cli/performance.go
package cli

import (
	"github.com/mwiater/dief/internal/appconfig"
	"github.com/mwiater/dief/internal/logging"
	"github.com/mwiater/dief/internal/report"
	"github.com/spf13/cobra"
)

var performanceOpts struct {
	deriveMetrics bool
	noContinue    bool
}

// performanceCmd implements 'performance', which joins dief@t with the conventional metrics.
var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Compare dief@t with conventional metrics for every test",
	Long: `Compute dief@t at each test's default time and report it next to the
conventional metrics tfft, totaltime, comp, throughput, 1/tfft and 1/totaltime.
Conventional metrics come from --metrics, or from the traces themselves with
--derive-metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolvedConfig()
		table, err := performanceTable(cfg, performanceOpts.deriveMetrics, cfg.ContinueToEnd && !performanceOpts.noContinue)
		if err != nil {
			return err
		}
		return writeTables(cmd.OutOrStdout(), cfg, "dieft", table)
	},
}

// performanceTable loads the inputs and builds the composite table.
func performanceTable(cfg appconfig.Config, derive, continueToEnd bool) (report.Table, error) {
	set, err := loadTraceSet(cfg)
	if err != nil {
		return report.Table{}, err
	}
	rows, err := loadMetricRecords(cfg, set, derive)
	if err != nil {
		return report.Table{}, err
	}
	results := newAnalyzer(cfg).PerformanceWithDieft(set, rows, continueToEnd)
	logging.LogComputation("performance", "", "", len(results))
	return report.FromComposite("dief@t and conventional metrics", results), nil
}

func init() {
	performanceCmd.Flags().BoolVar(&performanceOpts.deriveMetrics, "derive-metrics", false, "derive tfft, totaltime and comp from the traces instead of --metrics")
	performanceCmd.Flags().BoolVar(&performanceOpts.noContinue, "no-continue", false, "do not extend curves flat to the test's latest answer time")

	rootCmd.AddCommand(performanceCmd)
}
