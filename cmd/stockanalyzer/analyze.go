package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"StockAnalyzer/internal/model"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <ticker>",
		Short: "Run one analysis and print the recommendation",
		Example: `  stockanalyzer analyze RELIANCE.NS
  stockanalyzer analyze TCS.NS --timeframe weekly --company "Tata Consultancy Services"
  stockanalyzer analyze INFY.NS --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			raw, _ := cmd.Flags().GetString("timeframe")
			company, _ := cmd.Flags().GetString("company")
			asJSON, _ := cmd.Flags().GetBool("json")

			tf, err := model.ParseTimeframe(raw)
			if err != nil {
				return err
			}
			col, _, err := app.newCollector()
			if err != nil {
				return err
			}
			res, err := col.Analyze(ctx, symbol, company, tf)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringP("timeframe", "t", string(model.TimeframeDaily), "daily, weekly or monthly")
	cmd.Flags().String("company", "", "company name for the news lookup")
	cmd.Flags().Bool("json", false, "print the raw analysis result")
	return cmd
}

func printResult(w io.Writer, res *model.AnalysisResult) {
	fmt.Fprintf(w, "%s (%s): %s\n", res.Symbol, res.Timeframe, res.Recommendation.Action)
	fmt.Fprintf(w, "  %s\n\n", res.Recommendation.Reason)
	fmt.Fprintf(w, "  Price      %10.2f   VStop   %10.2f\n", res.CurrentPrice, res.VStop)
	fmt.Fprintf(w, "  52W High   %10.2f   52W Low %10.2f\n", res.High52w, res.Low52w)
	fmt.Fprintf(w, "  EMA50      %10.2f   SMA50   %10.2f\n", res.EMA50, res.SMA50)
	fmt.Fprintf(w, "  EMA200     %10.2f   SMA200  %10.2f\n", res.EMA200, res.SMA200)
	fmt.Fprintf(w, "  RSI        %10.2f   ADX     %10.2f\n", res.RSI, res.ADX)
	fmt.Fprintf(w, "  PSAR       %10.2f   Donch.  %10.2f\n", res.PSAR, res.DonchianUpper)
	fmt.Fprintf(w, "  RS         %10.3f   Pattern %s\n", res.RelativeStrength, res.ChartPattern)
	for _, item := range res.News {
		fmt.Fprintf(w, "  [%s %.2f] %s\n", item.Sentiment, item.SentimentScore, item.Title)
	}
}
