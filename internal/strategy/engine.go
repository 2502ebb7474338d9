package strategy

import (
	"fmt"

	"StockAnalyzer/internal/model"
)

// Signal thresholds.
const (
	BuyRSIMin  = 55.0
	BuyADXMin  = 25.0
	SellRSIMax = 45.0
)

const (
	buyReason  = "Strong bullish signals on the %s chart. Price is above key moving averages (50 & 200), with strong RSI (>55) and ADX (>25) momentum."
	sellReason = "Bearish signals on the %s chart. Price has dropped below key support levels (50-period MA, VStop, PSAR) with weakening RSI."
	holdReason = "On a %s basis, conditions are mixed. Advisable to wait for a clearer trend."
)

// Evaluate maps an indicator snapshot to a recommendation. Buy is checked
// first, then Sell; anything else is Hold. Unavailable readings compare as 0.
func Evaluate(snap *model.IndicatorSnapshot, tf model.Timeframe) model.Recommendation {
	switch {
	case allMet(buyConditions, snap):
		return model.Recommendation{Action: model.ActionBuy, Reason: fmt.Sprintf(buyReason, tf), Timeframe: tf}
	case allMet(sellConditions, snap):
		return model.Recommendation{Action: model.ActionSell, Reason: fmt.Sprintf(sellReason, tf), Timeframe: tf}
	default:
		return model.Recommendation{Action: model.ActionHold, Reason: fmt.Sprintf(holdReason, tf), Timeframe: tf}
	}
}
