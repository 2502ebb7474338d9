package collector

import (
	"context"
	"errors"
	"testing"

	"StockAnalyzer/internal/metrics"
	"StockAnalyzer/internal/model"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type failingFor struct {
	Fetcher
	symbol string
}

func (f failingFor) FetchBars(ctx context.Context, symbol, interval, rng string) ([]model.OHLCV, error) {
	if symbol == f.symbol {
		return nil, errors.New("upstream down")
	}
	return f.Fetcher.FetchBars(ctx, symbol, interval, rng)
}

type stubFundamentals struct{ err error }

func (s stubFundamentals) FetchFundamentals(context.Context, string) (*model.Fundamentals, error) {
	if s.err != nil {
		return nil, s.err
	}
	pe := 18.0
	return &model.Fundamentals{PE: &pe}, nil
}

type stubNews struct{ company string }

func (s *stubNews) FetchNews(_ context.Context, _, company string) []model.NewsItem {
	s.company = company
	return []model.NewsItem{{Title: "Order win", Sentiment: "positive", SentimentScore: 0.8}}
}

func TestCollector_Analyze(t *testing.T) {
	news := &stubNews{}
	m := metrics.New()
	c := NewCollector(&MockFetcher{Price: 1500})
	c.Fundamentals = stubFundamentals{}
	c.News = news
	c.Metrics = m

	res, err := c.Analyze(context.Background(), "INFY.NS", "Infosys", model.TimeframeDaily)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Symbol != "INFY.NS" || res.CurrentPrice == 0 || res.VStop == 0 {
		t.Errorf("result = %+v", res)
	}
	if res.PE != 18 {
		t.Errorf("pe = %v, want 18", res.PE)
	}
	if len(res.News) != 1 || news.company != "Infosys" {
		t.Errorf("news = %+v (company %q)", res.News, news.company)
	}
	// Identical generated series for instrument and benchmark.
	if res.RelativeStrength < 0.999 || res.RelativeStrength > 1.001 {
		t.Errorf("relativeStrength = %v, want 1", res.RelativeStrength)
	}
	if got := testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("daily", string(res.Recommendation.Action))); got != 1 {
		t.Errorf("analyses metric = %v", got)
	}
}

func TestCollector_OptionalInputsDegrade(t *testing.T) {
	c := NewCollector(failingFor{Fetcher: &MockFetcher{Price: 200}, symbol: DefaultBenchmark})
	c.Fundamentals = stubFundamentals{err: errors.New("quote summary 401")}

	in, err := c.Collect(context.Background(), "SBIN.NS", "", model.TimeframeWeekly)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if in.Benchmark != nil {
		t.Error("failed benchmark should be nil")
	}
	if in.Fundamentals != nil {
		t.Error("failed fundamentals should be nil")
	}
	if in.Daily.Len() == 0 || in.Series.Len() == 0 {
		t.Error("instrument and daily series should be present")
	}
	if in.News != nil {
		t.Error("no company means no news lookup")
	}
}

func TestCollector_InstrumentErrors(t *testing.T) {
	m := metrics.New()
	c := NewCollector(&MockFetcher{Bars: map[string][]model.OHLCV{"EMPTY.NS": {}}})
	c.Metrics = m

	_, err := c.Analyze(context.Background(), "EMPTY.NS", "", model.TimeframeMonthly)
	if !model.IsNoData(err) {
		t.Fatalf("expected NoDataError, got %v", err)
	}
	if err.Error() != "No data found for ticker EMPTY.NS on a monthly timeframe." {
		t.Errorf("message = %q", err.Error())
	}
	if got := testutil.ToFloat64(m.AnalysisErrors.WithLabelValues("no_data")); got != 1 {
		t.Errorf("no_data errors = %v", got)
	}

	c = NewCollector(&MockFetcher{Err: errors.New("connection refused")})
	if _, err := c.Analyze(context.Background(), "X.NS", "", model.TimeframeDaily); err == nil {
		t.Fatal("expected fetch error")
	}

	c = NewCollector(&MockFetcher{Price: 50, Count: 10})
	if _, err := c.Analyze(context.Background(), "TINY.NS", "", model.TimeframeDaily); !model.IsInsufficientData(err) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
}
