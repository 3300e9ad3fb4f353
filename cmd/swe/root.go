package main

import (
	"log/slog"
	"os"

	"github.com/reglet-dev/swecommon/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// settings is the viper instance shared by all commands.
	settings = config.NewViper()
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "swe",
	Short: "SWE Common element definition tool",
	Long: `swe loads SWE Common element definitions (Time, Quantity, Count, Boolean
and Text components with their constraints), shows the fields each editing
profile exposes, assigns values through the JSON value channel and validates
values against their constraints.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.swe.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.String(config.KeyFormat, config.FormatTable, "Output format: table, json, yaml")
	flags.String(config.KeyProfile, "simple,expert", "Editing profile(s): simple, expert, value (comma-separated)")

	for _, key := range []string{config.KeyFormat, config.KeyProfile} {
		if err := settings.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		settings.AddConfigPath(home)
		settings.SetConfigType("yaml")
		settings.SetConfigName(".swe")
	}

	if err := settings.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", settings.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
