package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockAnalyzer/internal/collector"
	"StockAnalyzer/internal/model"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <ticker>...",
		Short: "Copy Yahoo bars into the SQLite bar store",
		Long: `Fetch bars from Yahoo and upsert them into the local SQLite store, so
that data_source.provider: sqlite can analyse offline. Import the benchmark
too, and the daily timeframe for the 52-week range and chart pattern.`,
		Example: `  stockanalyzer import RELIANCE.NS ^NSEI
  stockanalyzer import RELIANCE.NS ^NSEI --timeframe weekly`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("timeframe")
			tf, err := model.ParseTimeframe(raw)
			if err != nil {
				return err
			}
			s, err := app.openStore()
			if err != nil {
				return fmt.Errorf("open bar store: %w", err)
			}
			yahoo := collector.NewYahooFetcher(app.Client)
			interval, rng := tf.Interval()

			for _, arg := range args {
				symbol := strings.ToUpper(arg)
				ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
				bars, err := yahoo.FetchBars(ctx, symbol, interval, rng)
				if err != nil {
					cancel()
					return fmt.Errorf("fetch %s: %w", symbol, err)
				}
				n, err := s.SaveBars(ctx, symbol, interval, bars)
				cancel()
				if err != nil {
					return fmt.Errorf("save %s: %w", symbol, err)
				}
				log.Info().Str("symbol", symbol).Str("interval", interval).Int("bars", n).Msg("imported")
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %s bars\n", symbol, n, interval)
			}
			return nil
		},
	}
	cmd.Flags().StringP("timeframe", "t", string(model.TimeframeDaily), "daily, weekly or monthly")
	return cmd
}
