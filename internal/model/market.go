package model

import (
	"fmt"
	"math"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a validated, time-ordered sequence of bars for one symbol.
// It is owned by a single analysis request and never mutated after creation.
type PriceSeries struct {
	Symbol string
	bars   []OHLCV
}

// NewPriceSeries validates bars and wraps them in a PriceSeries.
// Timestamps must be strictly increasing and every OHLC field must be a finite number.
func NewPriceSeries(symbol string, bars []OHLCV) (*PriceSeries, error) {
	for i, b := range bars {
		for _, f := range [...]struct {
			name string
			v    float64
		}{{"open", b.Open}, {"high", b.High}, {"low", b.Low}, {"close", b.Close}} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				return nil, &ValidationError{Field: f.name, Reason: fmt.Sprintf("bar %d has no usable %s value", i, f.name)}
			}
		}
		if i > 0 && !b.Time.After(bars[i-1].Time) {
			return nil, &ValidationError{Field: "time", Reason: fmt.Sprintf("bar %d at %s is not after bar %d", i, b.Time.Format(time.RFC3339), i-1)}
		}
	}
	cp := make([]OHLCV, len(bars))
	copy(cp, bars)
	return &PriceSeries{Symbol: symbol, bars: cp}, nil
}

func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bars)
}

// Bars returns a copy of the underlying bars.
func (s *PriceSeries) Bars() []OHLCV {
	if s == nil {
		return nil
	}
	cp := make([]OHLCV, len(s.bars))
	copy(cp, s.bars)
	return cp
}

// Bar returns the i-th bar.
func (s *PriceSeries) Bar(i int) OHLCV { return s.bars[i] }

// Last returns the most recent bar. ok is false for an empty series.
func (s *PriceSeries) Last() (bar OHLCV, ok bool) {
	if s.Len() == 0 {
		return OHLCV{}, false
	}
	return s.bars[len(s.bars)-1], true
}

func (s *PriceSeries) Closes() []float64 { return s.column(func(b OHLCV) float64 { return b.Close }) }
func (s *PriceSeries) Highs() []float64  { return s.column(func(b OHLCV) float64 { return b.High }) }
func (s *PriceSeries) Lows() []float64   { return s.column(func(b OHLCV) float64 { return b.Low }) }

func (s *PriceSeries) column(pick func(OHLCV) float64) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = pick(s.bars[i])
	}
	return out
}
