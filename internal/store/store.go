package store

import (
	"context"
	"time"

	"StockAnalyzer/internal/model"
)

// BarStore keeps fetched OHLCV history for offline analysis. It stores
// market data only, never analysis results.
type BarStore interface {
	SaveBars(ctx context.Context, symbol, interval string, bars []model.OHLCV) (int, error)
	LoadBars(ctx context.Context, symbol, interval string, since time.Time) ([]model.OHLCV, error)
	Close() error
}

// NoopStore is used when no database is configured. It stores nothing.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (NoopStore) SaveBars(_ context.Context, _, _ string, _ []model.OHLCV) (int, error) {
	return 0, nil
}

func (NoopStore) LoadBars(_ context.Context, _, _ string, _ time.Time) ([]model.OHLCV, error) {
	return nil, nil
}

func (NoopStore) Close() error { return nil }
