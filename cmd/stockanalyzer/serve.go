package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockAnalyzer/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis HTTP API",
		Example: `  stockanalyzer serve
  curl localhost:5000/analyze/RELIANCE.NS/daily`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			col, svc, err := app.newCollector()
			if err != nil {
				return err
			}
			var newsSource server.NewsSource
			if svc != nil {
				newsSource = svc
			}
			s := server.New(server.Options{
				Addr:       app.Config.Server.Addr,
				CORSOrigin: app.Config.Server.CORSOrigin,
				Metrics:    app.Metrics,
			}, col, newsSource)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", app.Config.Server.Addr).Msg("http server listening")
				errCh <- s.Run()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			log.Info().Msg("shutdown signal received, stopping...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.Shutdown(shutdownCtx)
		},
	}
}
