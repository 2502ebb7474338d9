package calculator

import (
	"math"

	"github.com/markcheno/go-talib"

	"StockAnalyzer/internal/model"
)

// CalculateSMA returns the latest simple moving average of prices over period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if err := checkPeriod("sma", len(prices), period, period); err != nil {
		return 0, err
	}
	return latest("sma", talib.Sma(prices, period))
}

// CalculateEMA returns the latest exponential moving average, seeded with the SMA of the first period prices.
func CalculateEMA(prices []float64, period int) (float64, error) {
	if err := checkPeriod("ema", len(prices), period, period); err != nil {
		return 0, err
	}
	return latest("ema", talib.Ema(prices, period))
}

// checkPeriod rejects a non-positive period and series shorter than need bars.
func checkPeriod(indicator string, have, period, need int) error {
	if period <= 0 {
		return &model.ValidationError{Field: indicator + ".period", Reason: "period must be positive"}
	}
	if have < need {
		return &model.InsufficientDataError{Indicator: indicator, Need: need - 1, Have: have}
	}
	return nil
}

// latest returns the last value of a library output, treating NaN/Inf as unavailable.
func latest(indicator string, out []float64) (float64, error) {
	if len(out) == 0 {
		return 0, &model.InsufficientDataError{Indicator: indicator, Need: 0, Have: 0}
	}
	v := out[len(out)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &model.InsufficientDataError{Indicator: indicator, Need: len(out), Have: len(out)}
	}
	return v, nil
}
