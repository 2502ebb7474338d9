package calculator

import (
	"github.com/markcheno/go-talib"

	"StockAnalyzer/internal/model"
)

// CalculateRSI computes the Wilder-smoothed RSI over the given period.
// Requires at least period+1 bars.
func CalculateRSI(closes []float64, period int) (float64, error) {
	if err := checkPeriod("rsi", len(closes), period, period+1); err != nil {
		return 0, err
	}
	return latest("rsi", talib.Rsi(closes, period))
}

// CalculateADX computes the Average Directional Index. The library needs
// 2*period bars before the first value.
func CalculateADX(series *model.PriceSeries, period int) (float64, error) {
	if err := checkPeriod("adx", series.Len(), period, 2*period+1); err != nil {
		return 0, err
	}
	return latest("adx", talib.Adx(series.Highs(), series.Lows(), series.Closes(), period))
}
