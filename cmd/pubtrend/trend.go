// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubtrend/internal/europepmc"
	"github.com/pdiddy/pubtrend/internal/export"
	"github.com/pdiddy/pubtrend/internal/trend"
	"github.com/pdiddy/pubtrend/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultRateLimit = 2.0
	defaultUserAgent = "pubtrend/0.1"
)

var trendCmd = &cobra.Command{
	Use:   "trend <query>...",
	Short: "Aggregate publication counts per year for a search term",
	Long: `Trend pages through all Europe PMC records matching the query, derives a
publication year for each record, and prints the per-year counts sorted
ascending by year. The --csv and --png flags additionally export the series
to publication_counts.csv and citations.png.`,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().Int("page-size", trend.DefaultPageSize, "records requested per API call")
	trendCmd.Flags().Int("max-pages", trend.DefaultMaxPages, "cap on page fetches per run")
	trendCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	trendCmd.Flags().Float64("rate", defaultRateLimit, "maximum page requests per second (0 disables)")
	trendCmd.Flags().String("out", ".", "directory export files are written to")
	trendCmd.Flags().Bool("csv", false, "export the series as CSV")
	trendCmd.Flags().Bool("png", false, "export the series as a PNG line chart")
	trendCmd.Flags().Bool("json", false, "print the series as JSON instead of a table")
	trendCmd.Flags().Bool("stats", false, "print run statistics as YAML")

	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))

	cfg := trendConfig(cmd)
	client := europepmc.NewClient(cfg, logger)
	runner := trend.NewRunner(client, logger)

	res, err := runner.Run(cmd.Context(), query, cfg, os.Stderr)
	if err != nil {
		if errors.Is(err, trend.ErrEmptyQuery) {
			return err
		}
		// One generic user-facing message; the cause goes to the
		// diagnostic log.
		logger.Error().Err(err).Msg("aggregation failed")
		return fmt.Errorf("search failed, no results were produced")
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := trend.FormatJSON(res, os.Stdout); err != nil {
			return err
		}
	} else {
		trend.FormatTable(res, os.Stdout)
	}

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		data, err := yaml.Marshal(res.Stats)
		if err != nil {
			return fmt.Errorf("marshaling stats: %w", err)
		}
		fmt.Fprintf(os.Stdout, "---\n%s", data)
	}

	runExports(cmd, query, res)
	return nil
}

// runExports performs the requested file exports. Export failures are
// reported to the diagnostic log only and never fail the command.
func runExports(cmd *cobra.Command, query string, res trend.Result) {
	outDir, _ := cmd.Flags().GetString("out")

	if wantCSV, _ := cmd.Flags().GetBool("csv"); wantCSV {
		path, err := export.SaveCSV(outDir, res.Series)
		switch {
		case errors.Is(err, export.ErrNoData):
			logger.Warn().Msg("csv export skipped: no data")
		case err != nil:
			logger.Error().Err(err).Msg("csv export failed")
		default:
			fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		}
	}

	if wantPNG, _ := cmd.Flags().GetBool("png"); wantPNG {
		path, err := export.SavePNG(outDir, query, res.Series)
		switch {
		case errors.Is(err, export.ErrNoData):
			logger.Warn().Msg("png export skipped: no data")
		case err != nil:
			logger.Error().Err(err).Msg("png export failed")
		default:
			fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		}
	}
}

// trendConfig builds the run configuration from flags, falling back to
// viper-managed config file values where a flag was not set.
func trendConfig(cmd *cobra.Command) types.TrendConfig {
	pageSize, _ := cmd.Flags().GetInt("page-size")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	rateLimit, _ := cmd.Flags().GetFloat64("rate")
	outDir, _ := cmd.Flags().GetString("out")

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("trend.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := viper.GetString("trend.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return types.TrendConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		PageSize:  pageSize,
		MaxPages:  maxPages,
		RateLimit: rateLimit,
		OutputDir: outDir,
	}
}
