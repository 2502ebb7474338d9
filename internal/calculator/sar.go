package calculator

import (
	"github.com/markcheno/go-talib"

	"StockAnalyzer/internal/model"
)

// Parabolic SAR acceleration settings.
const (
	PSARAcceleration = 0.02
	PSARMaximum      = 0.2
)

// CalculatePSAR returns the active Parabolic SAR level of the last bar,
// whichever side (long or short) it is currently on.
func CalculatePSAR(series *model.PriceSeries) (float64, error) {
	if series.Len() < 3 {
		return 0, &model.InsufficientDataError{Indicator: "psar", Need: 2, Have: series.Len()}
	}
	return latest("psar", talib.Sar(series.Highs(), series.Lows(), PSARAcceleration, PSARMaximum))
}

// CalculateATR returns Wilder's Average True Range aligned one-to-one with
// the series. Entries before index period are zero.
func CalculateATR(series *model.PriceSeries, period int) ([]float64, error) {
	if err := checkPeriod("atr", series.Len(), period, period+1); err != nil {
		return nil, err
	}
	return talib.Atr(series.Highs(), series.Lows(), series.Closes(), period), nil
}
