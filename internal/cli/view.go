// internal/cli/view.go
package cli

import (
	"fmt"

	"github.com/mwiater/dief/internal/report"
	"github.com/mwiater/dief/internal/tui"
	"github.com/spf13/cobra"
)

var viewOpts struct {
	deriveMetrics bool
}

// runBrowser starts the interactive browser. Tests replace it.
var runBrowser = tui.Run

// viewCmd implements 'view', which opens the computed tables in an interactive browser.
var viewCmd = &cobra.Command{
	Use:       "view [performance|continuous]...",
	Short:     "Browse result tables interactively",
	Long:      `Compute the performance and continuous efficiency tables (or only the named ones) and browse them in the terminal. Use tab to switch tables and q to quit.`,
	ValidArgs: []string{"performance", "continuous"},
	Args:      cobra.OnlyValidArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolvedConfig()
		if len(args) == 0 {
			args = []string{"performance", "continuous"}
		}

		tables := make([]report.Table, 0, len(args))
		for _, name := range args {
			var (
				table report.Table
				err   error
			)
			switch name {
			case "performance":
				derive := viewOpts.deriveMetrics || cfg.Metrics == ""
				table, err = performanceTable(cfg, derive, cfg.ContinueToEnd)
			case "continuous":
				table, err = continuousTable(cfg)
			default:
				err = fmt.Errorf("unknown table %q", name)
			}
			if err != nil {
				return err
			}
			tables = append(tables, table)
		}
		return runBrowser(tables)
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewOpts.deriveMetrics, "derive-metrics", false, "derive conventional metrics from the traces instead of --metrics")

	rootCmd.AddCommand(viewCmd)
}
