// internal/cli/show.go
package cli

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/dief/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands that display information about the current dief setup.`,
}

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file, environment and flags are merged in the expected order.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := ""
		if configLoaded {
			file = viper.ConfigFileUsed()
		}
		fallback := appconfig.Defaults()
		fallback.Traces = viper.GetString("traces")
		fallback.Metrics = viper.GetString("metrics")
		fallback.Debug = viper.GetBool("debug")
		appconfig.ShowConfig(cmd.OutOrStdout(), file, GetConfig(), fallback)

		if DebugEnabled() {
			pp.Fprintln(cmd.OutOrStdout(), resolvedConfig())
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
