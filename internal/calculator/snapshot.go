package calculator

import (
	"github.com/rs/zerolog/log"

	"StockAnalyzer/internal/model"
)

// Standard indicator lengths read by the signal engine.
const (
	RSIPeriod      = 14
	ADXPeriod      = 14
	DonchianPeriod = 20
)

// Snapshot computes the latest value of every standard indicator. Indicators
// without enough history are left unavailable rather than failing the
// snapshot. VStop is filled in by the caller.
func Snapshot(series *model.PriceSeries) *model.IndicatorSnapshot {
	snap := &model.IndicatorSnapshot{}
	last, ok := series.Last()
	if !ok {
		return snap
	}
	snap.Close = last.Close
	closes := series.Closes()

	for _, ma := range []struct {
		period   int
		ema, sma *model.Value
	}{
		{21, &snap.EMA21, &snap.SMA21},
		{50, &snap.EMA50, &snap.SMA50},
		{100, &snap.EMA100, &snap.SMA100},
		{200, &snap.EMA200, &snap.SMA200},
	} {
		*ma.ema = value(series.Symbol, "ema", ma.period)(CalculateEMA(closes, ma.period))
		*ma.sma = value(series.Symbol, "sma", ma.period)(CalculateSMA(closes, ma.period))
	}
	snap.RSI14 = value(series.Symbol, "rsi", RSIPeriod)(CalculateRSI(closes, RSIPeriod))
	snap.ADX14 = value(series.Symbol, "adx", ADXPeriod)(CalculateADX(series, ADXPeriod))
	snap.PSAR = value(series.Symbol, "psar", 0)(CalculatePSAR(series))
	snap.DonchianUpper = value(series.Symbol, "donchian", DonchianPeriod)(CalculateDonchianUpper(series, DonchianPeriod))
	return snap
}

// value turns an indicator result into a reading, logging why it is unavailable.
func value(symbol, indicator string, period int) func(float64, error) model.Value {
	return func(v float64, err error) model.Value {
		if err != nil {
			log.Debug().Err(err).
				Str("component", "calculator").
				Str("symbol", symbol).
				Str("indicator", indicator).
				Int("period", period).
				Msg("indicator unavailable")
			return model.None
		}
		return model.Some(v)
	}
}
