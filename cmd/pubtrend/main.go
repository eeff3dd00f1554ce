// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubtrend CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the process-wide diagnostic logger, configured in
// PersistentPreRun before any subcommand runs.
var logger zerolog.Logger

// rootCmd is the base command for the pubtrend CLI.
var rootCmd = &cobra.Command{
	Use:   "pubtrend",
	Short: "Chart publication counts per year from Europe PMC",
	Long: `pubtrend queries the Europe PMC literature search API for a search term,
pages through all matching records, aggregates publication counts by year,
and renders the result as a table, CSV file, or PNG line chart.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubtrend.yaml or ~/.config/pubtrend/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubtrend")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubtrend"))
		}
	}

	viper.SetEnvPrefix("PUBTREND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
