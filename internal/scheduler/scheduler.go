package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"StockAnalyzer/internal/config"
	"StockAnalyzer/internal/logger"
	"StockAnalyzer/internal/metrics"
	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/notifier"
)

// Analyzer runs one analysis; *collector.Collector implements it.
type Analyzer interface {
	Analyze(ctx context.Context, symbol, company string, tf model.Timeframe) (*model.AnalysisResult, error)
}

// Notifier delivers a formatted message.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string) error
}

// Scheduler runs the watchlist on a cron schedule and answers bot commands.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  Analyzer
	Notifier  Notifier
	Watchlist []config.WatchItem
	Timeframe model.Timeframe
	Metrics   *metrics.Metrics
	Ctx       context.Context

	logger zerolog.Logger
}

// NewScheduler creates a Scheduler. Cron specs carry a seconds field.
func NewScheduler(ctx context.Context, a Analyzer, n Notifier, watchlist []config.WatchItem, tf model.Timeframe, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  a,
		Notifier:  n,
		Watchlist: watchlist,
		Timeframe: tf,
		Metrics:   m,
		Ctx:       ctx,
		logger:    logger.Component("scheduler"),
	}
}

// Register schedules the watchlist run.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() { s.RunWatchlist(s.Ctx) }); err != nil {
		return fmt.Errorf("register watchlist task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.logger.Info().Int("symbols", len(s.Watchlist)).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.logger.Info().Msg("scheduler stopped")
}

// RunWatchlist analyses every watched symbol, sends one message per symbol
// and a closing summary, and returns the successful results.
func (s *Scheduler) RunWatchlist(ctx context.Context) []*model.AnalysisResult {
	s.logger.Info().Int("symbols", len(s.Watchlist)).Str("timeframe", string(s.Timeframe)).Msg("running watchlist")
	var results []*model.AnalysisResult
	for _, item := range s.Watchlist {
		if ctx.Err() != nil {
			break
		}
		res, err := s.Analyzer.Analyze(ctx, item.Symbol, item.Company, s.Timeframe)
		if err != nil {
			s.logger.Error().Err(err).Str("symbol", item.Symbol).Msg("watchlist analysis")
			s.trySend(ctx, notifier.FormatFailure(item.Symbol, err))
			continue
		}
		results = append(results, res)
		s.trySend(ctx, notifier.FormatAnalysis(res))
	}
	if len(results) > 1 {
		s.trySend(ctx, notifier.FormatWatchlistSummary(results))
	}
	return results
}

// HandleCommand answers a bot command. Replies are sent by the caller.
func (s *Scheduler) HandleCommand(ctx context.Context, command, args string) string {
	switch command {
	case "analyze":
		fields := strings.Fields(args)
		if len(fields) == 0 {
			return "Usage: /analyze TICKER [daily|weekly|monthly]"
		}
		symbol := strings.ToUpper(fields[0])
		tf := s.Timeframe
		if len(fields) > 1 {
			parsed, err := model.ParseTimeframe(fields[1])
			if err != nil {
				return notifier.FormatFailure(symbol, err)
			}
			tf = parsed
		}
		res, err := s.Analyzer.Analyze(ctx, symbol, s.company(symbol), tf)
		if err != nil {
			return notifier.FormatFailure(symbol, err)
		}
		return notifier.FormatAnalysis(res)
	case "watchlist":
		s.RunWatchlist(ctx)
		return ""
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) company(symbol string) string {
	for _, item := range s.Watchlist {
		if strings.EqualFold(item.Symbol, symbol) {
			return item.Company
		}
	}
	return ""
}

func (s *Scheduler) trySend(ctx context.Context, text string) {
	err := s.Notifier.SendWithRetry(ctx, text)
	s.Metrics.ObserveNotification(err)
	if err != nil {
		s.logger.Error().Err(err).Msg("send notification")
	}
}
