package calculator

import (
	"fmt"
	"math"

	"StockAnalyzer/internal/model"
)

// Regime is the side a volatility stop is trailing.
type Regime int

const (
	// RegimeWarmup covers bars before the ATR is reliable.
	RegimeWarmup Regime = iota
	// RegimeLong trails below price and only ratchets up.
	RegimeLong
	// RegimeShort trails above price and only ratchets down.
	RegimeShort
)

func (r Regime) String() string {
	switch r {
	case RegimeLong:
		return "long"
	case RegimeShort:
		return "short"
	default:
		return "warmup"
	}
}

// VStopParams configures the volatility stop.
type VStopParams struct {
	ATRPeriod  int
	Multiplier float64
	Lookback   int
}

// DefaultVStopParams matches the stop plotted on the analysis chart.
var DefaultVStopParams = VStopParams{ATRPeriod: 14, Multiplier: 2.0, Lookback: 1}

// Validate requires every parameter to be positive.
func (p VStopParams) Validate() error {
	switch {
	case p.ATRPeriod <= 0:
		return &model.ValidationError{Field: "vstop.atr_period", Reason: fmt.Sprintf("must be positive, got %d", p.ATRPeriod)}
	case !(p.Multiplier > 0):
		return &model.ValidationError{Field: "vstop.multiplier", Reason: fmt.Sprintf("must be positive, got %g", p.Multiplier)}
	case p.Lookback <= 0:
		return &model.ValidationError{Field: "vstop.lookback", Reason: fmt.Sprintf("must be positive, got %d", p.Lookback)}
	}
	return nil
}

// VStopState is threaded through one stop computation and discarded afterwards.
type VStopState struct {
	Regime        Regime
	PreviousStop  float64
	HighRunLength int
	LowRunLength  int
}

// VStopInput is what a steady-state transition needs to know about bar i.
type VStopInput struct {
	PrevHigh   float64 // high of bar i-1
	WindowHigh float64 // max close over the trailing lookback+1 bars
	WindowLow  float64 // min close over the trailing lookback+1 bars
	ATR        float64
}

// Step is the pure steady-state transition. A prior high above the previous
// stop keeps or starts the long regime; anything else keeps or starts the
// short regime. Within a run the stop never moves against the regime.
func Step(s VStopState, in VStopInput, multiplier float64) (VStopState, float64) {
	var next VStopState
	if in.PrevHigh > s.PreviousStop {
		stop := in.WindowHigh - multiplier*in.ATR
		if s.HighRunLength > 0 {
			stop = math.Max(s.PreviousStop, stop)
		}
		next = VStopState{Regime: RegimeLong, PreviousStop: stop, HighRunLength: s.HighRunLength + 1}
		return next, stop
	}
	stop := in.WindowLow + multiplier*in.ATR
	if s.LowRunLength > 0 {
		stop = math.Min(s.PreviousStop, stop)
	}
	next = VStopState{Regime: RegimeShort, PreviousStop: stop, LowRunLength: s.LowRunLength + 1}
	return next, stop
}

// VStopResult holds the per-bar stop series.
type VStopResult struct {
	Stops   []float64
	Regimes []Regime
}

// Latest returns the stop of the last bar.
func (r *VStopResult) Latest() float64 {
	return r.Stops[len(r.Stops)-1]
}

// VStop computes the volatility stop for every bar of series. atr must be a
// Wilder ATR with p.ATRPeriod aligned one-to-one with the series.
func VStop(series *model.PriceSeries, atr []float64, p VStopParams) (*VStopResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := series.Len()
	if n <= p.ATRPeriod {
		return nil, &model.InsufficientDataError{Indicator: "vstop", Need: p.ATRPeriod, Have: n}
	}
	if len(atr) != n {
		return nil, &model.ValidationError{Field: "atr", Reason: fmt.Sprintf("length %d does not match series length %d", len(atr), n)}
	}

	closes := series.Closes()
	res := &VStopResult{Stops: make([]float64, n), Regimes: make([]Regime, n)}
	var state VStopState

	for i := 0; i < n; i++ {
		if i < p.ATRPeriod {
			// No prior stop to compare against yet.
			stop := closes[i] + p.Multiplier*atr[i]
			state = VStopState{Regime: RegimeWarmup, PreviousStop: stop}
			res.Stops[i], res.Regimes[i] = stop, RegimeWarmup
			continue
		}
		hi, lo := windowExtremes(closes, i, p.Lookback)
		var stop float64
		state, stop = Step(state, VStopInput{
			PrevHigh:   series.Bar(i - 1).High,
			WindowHigh: hi,
			WindowLow:  lo,
			ATR:        atr[i],
		}, p.Multiplier)
		res.Stops[i], res.Regimes[i] = stop, state.Regime
	}
	return res, nil
}

// CalculateVStop derives the ATR from the series and computes the stop.
func CalculateVStop(series *model.PriceSeries, p VStopParams) (*VStopResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if series.Len() <= p.ATRPeriod {
		return nil, &model.InsufficientDataError{Indicator: "vstop", Need: p.ATRPeriod, Have: series.Len()}
	}
	atr, err := CalculateATR(series, p.ATRPeriod)
	if err != nil {
		return nil, fmt.Errorf("vstop atr: %w", err)
	}
	return VStop(series, atr, p)
}

// windowExtremes returns max and min of closes[i-lookback..i], clipped at the series start.
func windowExtremes(closes []float64, i, lookback int) (hi, lo float64) {
	hi, lo = math.Inf(-1), math.Inf(1)
	for j := trailingStart(i+1, lookback+1); j <= i; j++ {
		hi = math.Max(hi, closes[j])
		lo = math.Min(lo, closes[j])
	}
	return hi, lo
}
