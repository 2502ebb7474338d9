package collector

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"StockAnalyzer/internal/model"
)

// BarLoader is the read side of a bar store.
type BarLoader interface {
	LoadBars(ctx context.Context, symbol, interval string, since time.Time) ([]model.OHLCV, error)
}

// StoreFetcher serves bars previously imported into a local store.
type StoreFetcher struct {
	Store BarLoader
	Now   func() time.Time
}

func NewStoreFetcher(store BarLoader) *StoreFetcher {
	return &StoreFetcher{Store: store, Now: time.Now}
}

func (f *StoreFetcher) Name() string { return "sqlite" }

func (f *StoreFetcher) FetchBars(ctx context.Context, symbol, interval, rng string) ([]model.OHLCV, error) {
	since, err := rangeStart(f.Now(), rng)
	if err != nil {
		return nil, err
	}
	return f.Store.LoadBars(ctx, symbol, interval, since)
}

// rangeStart converts a Yahoo style range (5d, 3mo, 2y, max) into the
// earliest timestamp it covers.
func rangeStart(now time.Time, rng string) (time.Time, error) {
	if rng == "max" {
		return time.Time{}, nil
	}
	for _, unit := range []struct {
		suffix string
		apply  func(n int) time.Time
	}{
		{"mo", func(n int) time.Time { return now.AddDate(0, -n, 0) }},
		{"wk", func(n int) time.Time { return now.AddDate(0, 0, -7*n) }},
		{"d", func(n int) time.Time { return now.AddDate(0, 0, -n) }},
		{"y", func(n int) time.Time { return now.AddDate(-n, 0, 0) }},
	} {
		if len(rng) > len(unit.suffix) && rng[len(rng)-len(unit.suffix):] == unit.suffix {
			n, err := strconv.Atoi(rng[:len(rng)-len(unit.suffix)])
			if err != nil || n <= 0 {
				break
			}
			return unit.apply(n), nil
		}
	}
	return time.Time{}, &model.ValidationError{Field: "range", Reason: fmt.Sprintf("unsupported range %q", rng)}
}
