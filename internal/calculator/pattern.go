package calculator

import (
	"math"

	"StockAnalyzer/internal/model"
)

// Chart pattern labels. No other pattern is recognized.
const (
	PatternBreakout52w = "New 52-Week High Breakout"
	PatternNone        = "No clear pattern"
)

// DetectChartPattern flags a close at or above the trailing 52-week high.
// daily must hold daily bars regardless of the analysis timeframe; with
// fewer than 252 bars the whole series is the window.
func DetectChartPattern(daily *model.PriceSeries) string {
	n := daily.Len()
	if n == 0 {
		return PatternNone
	}
	high := math.Inf(-1)
	for i := trailingStart(n, TradingDaysPerYear); i < n; i++ {
		high = math.Max(high, daily.Bar(i).High)
	}
	if daily.Bar(n-1).Close >= high {
		return PatternBreakout52w
	}
	return PatternNone
}
