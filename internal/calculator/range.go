package calculator

import (
	"math"

	"github.com/markcheno/go-talib"

	"StockAnalyzer/internal/model"
)

// TradingDaysPerYear is the bar count of a 52-week window on daily data.
const TradingDaysPerYear = 252

// Calculate52WeekRange scans the most recent 252 trading days and returns the high and low.
func Calculate52WeekRange(daily *model.PriceSeries) (high, low float64, err error) {
	n := daily.Len()
	if n == 0 {
		return 0, 0, &model.ValidationError{Field: "daily", Reason: "no daily bars provided"}
	}
	high, low = math.Inf(-1), math.Inf(1)
	for i := trailingStart(n, TradingDaysPerYear); i < n; i++ {
		b := daily.Bar(i)
		high = math.Max(high, b.High)
		low = math.Min(low, b.Low)
	}
	return high, low, nil
}

// CalculateDonchianUpper returns the highest high of the last period bars.
func CalculateDonchianUpper(series *model.PriceSeries, period int) (float64, error) {
	if err := checkPeriod("donchian", series.Len(), period, period); err != nil {
		return 0, err
	}
	return latest("donchian", talib.Max(series.Highs(), period))
}

// trailingStart returns the first index of a window of size bars ending at n-1, clipped at 0.
func trailingStart(n, size int) int {
	if start := n - size; start > 0 {
		return start
	}
	return 0
}
