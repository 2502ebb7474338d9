package collector

import (
	"context"
	"testing"
	"time"

	"StockAnalyzer/internal/model"
)

type fakeLoader struct {
	symbol, interval string
	since            time.Time
}

func (f *fakeLoader) LoadBars(_ context.Context, symbol, interval string, since time.Time) ([]model.OHLCV, error) {
	f.symbol, f.interval, f.since = symbol, interval, since
	return []model.OHLCV{{Time: since, Close: 1}}, nil
}

func TestStoreFetcher_FetchBars(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	loader := &fakeLoader{}
	f := &StoreFetcher{Store: loader, Now: func() time.Time { return now }}

	if _, err := f.FetchBars(context.Background(), "INFY.NS", "1wk", "5y"); err != nil {
		t.Fatal(err)
	}
	if loader.symbol != "INFY.NS" || loader.interval != "1wk" || !loader.since.Equal(now.AddDate(-5, 0, 0)) {
		t.Errorf("loader got %+v", loader)
	}
}

func TestRangeStart(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		rng     string
		want    time.Time
		wantErr bool
	}{
		{"1y", now.AddDate(-1, 0, 0), false},
		{"10y", now.AddDate(-10, 0, 0), false},
		{"3mo", now.AddDate(0, -3, 0), false},
		{"5d", now.AddDate(0, 0, -5), false},
		{"2wk", now.AddDate(0, 0, -14), false},
		{"max", time.Time{}, false},
		{"y", time.Time{}, true},
		{"forever", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := rangeStart(now, tt.rng)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v", tt.rng, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.rng, got, tt.want)
		}
	}
}
