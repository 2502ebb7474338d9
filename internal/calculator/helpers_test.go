package calculator

import (
	"testing"
	"time"

	"StockAnalyzer/internal/model"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// seriesFromCloses builds daily bars whose high and low sit spread away from the close.
func seriesFromCloses(t *testing.T, closes []float64, spread float64) *model.PriceSeries {
	t.Helper()
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  day0.AddDate(0, 0, i),
			Open:  c,
			High:  c + spread,
			Low:   c - spread,
			Close: c,
		}
	}
	s, err := model.NewPriceSeries("TEST.NS", bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	return s
}

func rising(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
