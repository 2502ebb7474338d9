// Package analysis turns resolved price, fundamental and news inputs into an
// AnalysisResult. It performs no I/O.
package analysis

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/strategy"
)

// Input carries everything one analysis needs. Benchmark, Daily,
// Fundamentals and News are optional.
type Input struct {
	Series       *model.PriceSeries // bars at the analysis timeframe
	Benchmark    *model.PriceSeries // index bars at the same timeframe
	Daily        *model.PriceSeries // one year of daily bars for the 52-week figures
	Timeframe    model.Timeframe
	Fundamentals *model.Fundamentals
	News         []model.NewsItem
	VStop        calculator.VStopParams // zero value means DefaultVStopParams
}

// Analyze runs the indicator snapshot, volatility stop, relative strength and
// chart pattern, then the signal engine. Only a malformed request or a
// series too short for the volatility stop fails the analysis.
func Analyze(in Input) (*model.AnalysisResult, error) {
	tf, err := model.ParseTimeframe(string(in.Timeframe))
	if err != nil {
		return nil, err
	}
	if in.Series.Len() == 0 {
		symbol := ""
		if in.Series != nil {
			symbol = in.Series.Symbol
		}
		return nil, &model.NoDataError{Symbol: symbol, Timeframe: tf}
	}
	symbol := in.Series.Symbol
	logger := log.With().Str("component", "analysis").Str("symbol", symbol).Str("timeframe", string(tf)).Logger()

	params := in.VStop
	if params == (calculator.VStopParams{}) {
		params = calculator.DefaultVStopParams
	}

	snap := calculator.Snapshot(in.Series)
	vs, err := calculator.CalculateVStop(in.Series, params)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", symbol, err)
	}
	snap.VStop = model.Some(vs.Latest())

	var rs float64
	if in.Benchmark.Len() > 0 {
		rs, err = calculator.RelativeStrength(in.Series, in.Benchmark)
		if err != nil {
			logger.Warn().Err(err).Msg("relative strength unavailable")
			rs = 0
		}
	} else {
		logger.Warn().Msg("no benchmark series, relative strength unavailable")
	}

	res := &model.AnalysisResult{
		Symbol:           symbol,
		Timeframe:        tf,
		CurrentPrice:     snap.Close,
		EMA21:            snap.EMA21.Float(),
		EMA50:            snap.EMA50.Float(),
		EMA100:           snap.EMA100.Float(),
		EMA200:           snap.EMA200.Float(),
		SMA21:            snap.SMA21.Float(),
		SMA50:            snap.SMA50.Float(),
		SMA100:           snap.SMA100.Float(),
		SMA200:           snap.SMA200.Float(),
		RSI:              snap.RSI14.Float(),
		ADX:              snap.ADX14.Float(),
		PSAR:             snap.PSAR.Float(),
		DonchianUpper:    snap.DonchianUpper.Float(),
		VStop:            snap.VStop.Float(),
		RelativeStrength: rs,
		ChartPattern:     calculator.DetectChartPattern(in.Daily),
		Recommendation:   strategy.Evaluate(snap, tf),
		News:             in.News,
	}
	if res.News == nil {
		res.News = []model.NewsItem{}
	}
	if high, low, err := calculator.Calculate52WeekRange(in.Daily); err == nil {
		res.High52w, res.Low52w = high, low
	} else {
		logger.Warn().Err(err).Msg("52-week range unavailable")
	}
	applyFundamentals(res, in.Fundamentals)

	if res.Recommendation.Action == model.ActionHold {
		buy, sell := strategy.Unmet(snap)
		logger.Debug().Strs("unmet_buy", buy).Strs("unmet_sell", sell).Msg("hold")
	}
	logger.Info().
		Str("action", string(res.Recommendation.Action)).
		Float64("close", res.CurrentPrice).
		Float64("vstop", res.VStop).
		Float64("rs", res.RelativeStrength).
		Msg("analysis complete")
	return res, nil
}

func applyFundamentals(res *model.AnalysisResult, f *model.Fundamentals) {
	if f == nil {
		return
	}
	deref := func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	}
	res.PE = deref(f.PE)
	res.ForwardPE = deref(f.ForwardPE)
	res.EPS = deref(f.EPS)
	res.ForwardEPS = deref(f.ForwardEPS)
	res.PriceToBook = deref(f.PriceToBook)
	res.CFOPAT = deref(f.CFOPAT)
	res.InterestCoverage = deref(f.InterestCoverage)
}
