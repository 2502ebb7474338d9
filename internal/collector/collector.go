package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockAnalyzer/internal/analysis"
	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/metrics"
	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/trace"
)

// Daily history used for the 52-week figures and the chart pattern.
const (
	dailyInterval = "1d"
	dailyRange    = "1y"
)

// DefaultBenchmark is the NIFTY 50 index.
const DefaultBenchmark = "^NSEI"

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  map[string][]model.OHLCV // keyed by symbol; missing symbols get generated bars
	Count int
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, symbol, _, _ string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	count := m.Count
	if count == 0 {
		count = 300
	}
	return generateMockBars(m.Price, count), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -count)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector gathers every input of one analysis and runs it.
type Collector struct {
	Bars         Fetcher
	Fundamentals FundamentalsFetcher // optional
	News         NewsFetcher         // optional
	Benchmark    string
	VStop        calculator.VStopParams
	Metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewCollector creates a Collector on bars with the default benchmark.
func NewCollector(bars Fetcher) *Collector {
	return &Collector{
		Bars:      bars,
		Benchmark: DefaultBenchmark,
		VStop:     calculator.DefaultVStopParams,
		logger:    log.With().Str("component", "collector").Str("source", bars.Name()).Logger(),
	}
}

// Collect fetches the instrument, benchmark and daily series together with
// fundamentals and news. Only a failed or empty instrument fetch is an
// error; every other input degrades to unavailable.
func (c *Collector) Collect(ctx context.Context, symbol, company string, tf model.Timeframe) (in analysis.Input, err error) {
	ctx, span := trace.StartSpan(ctx, "collector.Collect")
	defer func() { trace.End(span, err) }()

	interval, rng := tf.Interval()
	in = analysis.Input{Timeframe: tf, VStop: c.VStop}

	var (
		wg                         sync.WaitGroup
		instBars, benchBars, daily []model.OHLCV
		instErr, benchErr, dayErr  error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		instBars, instErr = c.fetch(ctx, symbol, interval, rng)
	}()
	go func() {
		defer wg.Done()
		benchBars, benchErr = c.fetch(ctx, c.Benchmark, interval, rng)
	}()
	go func() {
		defer wg.Done()
		daily, dayErr = c.fetch(ctx, symbol, dailyInterval, dailyRange)
	}()
	if c.Fundamentals != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			f, err := c.Fundamentals.FetchFundamentals(ctx, symbol)
			c.Metrics.ObserveFetch("fundamentals", start, err)
			if err != nil {
				c.logger.Warn().Err(err).Str("symbol", symbol).Msg("fundamentals unavailable")
				return
			}
			in.Fundamentals = f
		}()
	}
	if c.News != nil && company != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.News = c.News.FetchNews(ctx, symbol, company)
			c.Metrics.ObserveNews(len(in.News))
		}()
	}
	wg.Wait()

	if instErr != nil {
		return in, fmt.Errorf("fetch %s: %w", symbol, instErr)
	}
	if len(instBars) == 0 {
		return in, &model.NoDataError{Symbol: symbol, Timeframe: tf}
	}
	series, err := model.NewPriceSeries(symbol, instBars)
	if err != nil {
		return in, fmt.Errorf("series %s: %w", symbol, err)
	}
	in.Series = series

	in.Benchmark = c.optionalSeries(c.Benchmark, benchBars, benchErr)
	in.Daily = c.optionalSeries(symbol, daily, dayErr)
	return in, nil
}

// Analyze collects inputs and runs the analysis.
func (c *Collector) Analyze(ctx context.Context, symbol, company string, tf model.Timeframe) (*model.AnalysisResult, error) {
	ctx, span := trace.StartSpan(ctx, "collector.Analyze")
	in, err := c.Collect(ctx, symbol, company, tf)
	if err != nil {
		c.Metrics.ObserveError(errorKind(err))
		trace.End(span, err)
		return nil, err
	}
	res, err := analysis.Analyze(in)
	trace.End(span, err)
	if err != nil {
		c.Metrics.ObserveError(errorKind(err))
		return nil, err
	}
	c.Metrics.ObserveAnalysis(string(res.Timeframe), string(res.Recommendation.Action))
	return res, nil
}

func (c *Collector) fetch(ctx context.Context, symbol, interval, rng string) ([]model.OHLCV, error) {
	ctx, span := trace.StartSpan(ctx, "collector.fetch")
	start := time.Now()
	bars, err := c.Bars.FetchBars(ctx, symbol, interval, rng)
	c.Metrics.ObserveFetch(c.Bars.Name(), start, err)
	trace.End(span, err)
	c.logger.Debug().Str("symbol", symbol).Str("interval", interval).Str("range", rng).
		Int("bars", len(bars)).Dur("took", time.Since(start)).Err(err).Msg("fetch")
	return bars, err
}

func (c *Collector) optionalSeries(symbol string, bars []model.OHLCV, err error) *model.PriceSeries {
	if err != nil {
		c.logger.Warn().Err(err).Str("symbol", symbol).Msg("optional series unavailable")
		return nil
	}
	s, err := model.NewPriceSeries(symbol, bars)
	if err != nil {
		c.logger.Warn().Err(err).Str("symbol", symbol).Msg("optional series rejected")
		return nil
	}
	return s
}

// errorKind labels an analysis failure for metrics.
func errorKind(err error) string {
	switch {
	case model.IsNoData(err):
		return "no_data"
	case model.IsInsufficientData(err):
		return "insufficient_data"
	case model.IsValidation(err):
		return "validation"
	default:
		return "upstream"
	}
}
