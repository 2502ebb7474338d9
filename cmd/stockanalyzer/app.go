package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/collector"
	"StockAnalyzer/internal/config"
	"StockAnalyzer/internal/logger"
	"StockAnalyzer/internal/metrics"
	"StockAnalyzer/internal/news"
	"StockAnalyzer/internal/store"
	"StockAnalyzer/internal/trace"
)

// App carries what every command shares once the config is loaded.
type App struct {
	ConfigPath string
	Config     *config.Config
	Client     *collector.HTTPClient
	Metrics    *metrics.Metrics
	Store      store.BarStore
}

func newRootCmd() *cobra.Command {
	app := &App{}
	root := &cobra.Command{
		Use:           "stockanalyzer",
		Short:         "Technical Buy/Sell/Hold signals for equities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return app.close(cmd.Context())
		},
	}
	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	root.PersistentFlags().StringVar(&app.ConfigPath, "config", defaultPath, "path to the YAML config")

	root.AddCommand(newServeCmd(app))
	root.AddCommand(newAnalyzeCmd(app))
	root.AddCommand(newWatchCmd(app))
	root.AddCommand(newImportCmd(app))
	return root
}

func (a *App) load() error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	a.Config = cfg

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err := trace.Init(cfg.Log.Tracing, os.Stderr); err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	a.Client = collector.NewHTTPClient(collector.ClientOptions{
		Timeout:        cfg.DataSource.Timeout,
		RequestsPerSec: cfg.DataSource.RequestsPerSec,
		MaxRetries:     cfg.DataSource.MaxRetries,
		ProxyURL:       cfg.Proxy,
	})
	a.Metrics = metrics.New()
	return nil
}

// openStore opens the SQLite bar store.
func (a *App) openStore() (store.BarStore, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	s, err := store.NewSQLiteStore(a.Config.Database.SQLitePath)
	if err != nil {
		return nil, err
	}
	a.Store = s
	return s, nil
}

func (a *App) close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := trace.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("trace shutdown")
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// newCollector wires the configured bar source, fundamentals and news.
func (a *App) newCollector() (*collector.Collector, *news.Service, error) {
	cfg := a.Config
	yahoo := collector.NewYahooFetcher(a.Client)

	var bars collector.Fetcher = yahoo
	if cfg.DataSource.Provider == "sqlite" {
		s, err := a.openStore()
		if err != nil {
			return nil, nil, fmt.Errorf("open bar store: %w", err)
		}
		bars = collector.NewStoreFetcher(s)
	}

	col := collector.NewCollector(bars)
	col.Benchmark = cfg.DataSource.Benchmark
	col.VStop = calculator.VStopParams{
		ATRPeriod:  cfg.Indicators.VStop.ATRPeriod,
		Multiplier: cfg.Indicators.VStop.Multiplier,
		Lookback:   cfg.Indicators.VStop.Lookback,
	}
	col.Metrics = a.Metrics
	if cfg.DataSource.Provider == "yahoo" {
		col.Fundamentals = yahoo
	}

	var svc *news.Service
	if cfg.News.Enabled {
		svc = news.NewService(news.Config{
			ReliableSources:    cfg.News.ReliableSources,
			IrrelevantKeywords: cfg.News.IrrelevantKeywords,
			ScripCodes:         cfg.News.ScripCodes,
			MaxItems:           cfg.News.MaxItems,
		}, a.Client, news.NewLexiconScorer())
		col.News = svc
	}
	log.Info().Str("provider", bars.Name()).Str("benchmark", col.Benchmark).Bool("news", svc != nil).Msg("collector ready")
	return col, svc, nil
}
