// internal/cli/continuous.go
package cli

import (
	"github.com/mwiater/dief/internal/appconfig"
	"github.com/mwiater/dief/internal/logging"
	"github.com/mwiater/dief/internal/report"
	"github.com/spf13/cobra"
)

// continuousCmd implements 'continuous', which reports dief@k at 25, 50, 75 and 100 percent.
var continuousCmd = &cobra.Command{
	Use:   "continuous",
	Short: "Report dief@k at 25%, 50%, 75% and 100% of the answers for every test",
	Long: `Compute dief@k with k at 25, 50, 75 and 100 percent of each test's default k.
Reading the four values in order shows whether an approach keeps its pace as
the answer count grows. Lower is better.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolvedConfig()
		table, err := continuousTable(cfg)
		if err != nil {
			return err
		}
		return writeTables(cmd.OutOrStdout(), cfg, "", table)
	},
}

// continuousTable loads the traces and builds the continuous efficiency table.
func continuousTable(cfg appconfig.Config) (report.Table, error) {
	set, err := loadTraceSet(cfg)
	if err != nil {
		return report.Table{}, err
	}
	results := newAnalyzer(cfg).ContinuousEfficiency(set)
	logging.LogComputation("continuous", "", "kp=0.25,0.5,0.75,1", len(results))
	return report.FromContinuous("dief@k continuous efficiency", results), nil
}

func init() {
	rootCmd.AddCommand(continuousCmd)
}
