package main

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/notifier"
	"StockAnalyzer/internal/scheduler"
)

func newWatchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Analyse the watchlist on a schedule and notify via Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.Config
			if err := cfg.ValidateWatch(); err != nil {
				return err
			}
			runNow, _ := cmd.Flags().GetBool("run-now")

			col, _, err := app.newCollector()
			if err != nil {
				return err
			}
			tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			tf, _ := model.ParseTimeframe(cfg.Watchlist.Timeframe)
			sched := scheduler.NewScheduler(ctx, col, tn, cfg.Watchlist.Symbols, tf, app.Metrics)
			if err := sched.Register(cfg.Watchlist.Cron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			go tn.StartPolling(ctx, sched.HandleCommand)

			if runNow {
				go sched.RunWatchlist(ctx)
			}

			log.Info().Str("cron", cfg.Watchlist.Cron).Msg("watching. Press Ctrl+C to stop.")
			<-ctx.Done()
			log.Info().Msg("shutdown signal received, stopping...")
			return nil
		},
	}
	cmd.Flags().Bool("run-now", false, "analyse the watchlist once at startup")
	return cmd
}
