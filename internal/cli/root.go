// internal/cli/root.go
// Package cli wires the dief command tree.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mwiater/dief/internal/appconfig"
	"github.com/mwiater/dief/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	configLoaded  bool
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dief",
	Short: "dief computes diefficiency metrics (dief@t, dief@k) from answer traces",
	Long: `dief measures how continuously a query engine delivers answers. It reads
answer traces (test, approach, answer, time), integrates the answer curve and
reports dief@t, dief@k and the composite tables used to compare approaches.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(cmd); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		cfg := appconfig.Defaults()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if configLoaded {
			cfg.ConfigPath = viper.ConfigFileUsed()
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetDebug(currentConfig.Debug)
		logging.LogDebug("configuration resolved: file=%q format=%s workers=%d continueToEnd=%v", cfg.ConfigPath, cfg.OutputFormat(), cfg.Workers, cfg.ContinueToEnd)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (JSON or YAML)")

	rootCmd.PersistentFlags().String("traces", "", "path to the answer traces file (.csv or .json)")
	rootCmd.PersistentFlags().String("metrics", "", "path to the conventional metrics CSV (test, approach, tfft, totaltime, comp)")
	rootCmd.PersistentFlags().String("format", appconfig.DefaultFormat, "output format: table, csv, json or yaml")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("workers", 0, "maximum tests computed concurrently (0 = GOMAXPROCS)")

	bindFlags()
}

// bindFlags binds the persistent flags to viper keys so flags override config.
func bindFlags() {
	for _, name := range []string{"traces", "metrics", "format", "logFile", "debug", "workers"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig loads .env and sets up environment overrides and defaults.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("DIEF")
	viper.AutomaticEnv()
	viper.SetDefault("format", appconfig.DefaultFormat)
	viper.SetDefault("continueToEnd", true)
}

// ensureConfigLoaded reads the config file. Without --config the default path
// is tried first, then the legacy dief.json; finding neither is not an error.
// A missing file named by --config is.
func ensureConfigLoaded(cmd *cobra.Command) error {
	configLoaded = false

	explicit := cmd.Flags().Changed("config")
	path := cfgFile
	if !explicit {
		resolved, err := appconfig.ResolvePath("")
		if errors.Is(err, appconfig.ErrConfigNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		path = resolved
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %q not found", path)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	configLoaded = true
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
