package collector

import (
	"context"

	"StockAnalyzer/internal/model"
)

// Fetcher loads OHLCV bars for a symbol. interval is one of 1d, 1wk, 1mo and
// rng a lookback such as 1y, 2y, 5y or 10y.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, interval, rng string) ([]model.OHLCV, error)
	Name() string
}

// FundamentalsFetcher loads valuation ratios. Implementations are best
// effort: missing ratios are left nil.
type FundamentalsFetcher interface {
	FetchFundamentals(ctx context.Context, symbol string) (*model.Fundamentals, error)
}

// NewsFetcher loads scored news for a symbol. It never fails; an empty
// list means nothing was found.
type NewsFetcher interface {
	FetchNews(ctx context.Context, symbol, company string) []model.NewsItem
}
