package strategy

import "StockAnalyzer/internal/model"

// condition is one named comparison the engine checks against a snapshot.
type condition struct {
	Name string
	Met  func(s *model.IndicatorSnapshot) bool
}

func above(name string, pick func(*model.IndicatorSnapshot) model.Value) condition {
	return condition{Name: "close > " + name, Met: func(s *model.IndicatorSnapshot) bool {
		return s.Close > pick(s).Float()
	}}
}

func below(name string, pick func(*model.IndicatorSnapshot) model.Value) condition {
	return condition{Name: "close < " + name, Met: func(s *model.IndicatorSnapshot) bool {
		return s.Close < pick(s).Float()
	}}
}

func ema50(s *model.IndicatorSnapshot) model.Value  { return s.EMA50 }
func sma50(s *model.IndicatorSnapshot) model.Value  { return s.SMA50 }
func ema200(s *model.IndicatorSnapshot) model.Value { return s.EMA200 }
func sma200(s *model.IndicatorSnapshot) model.Value { return s.SMA200 }
func vstop(s *model.IndicatorSnapshot) model.Value  { return s.VStop }
func psar(s *model.IndicatorSnapshot) model.Value   { return s.PSAR }

// buyConditions must all hold for a Buy.
var buyConditions = []condition{
	above("ema50", ema50),
	above("sma50", sma50),
	above("ema200", ema200),
	above("sma200", sma200),
	{Name: "rsi > 55", Met: func(s *model.IndicatorSnapshot) bool { return s.RSI14.Float() > BuyRSIMin }},
	{Name: "adx > 25", Met: func(s *model.IndicatorSnapshot) bool { return s.ADX14.Float() > BuyADXMin }},
	above("vstop", vstop),
	above("psar", psar),
}

// sellConditions must all hold for a Sell.
var sellConditions = []condition{
	below("ema50", ema50),
	below("vstop", vstop),
	below("psar", psar),
	{Name: "rsi < 45", Met: func(s *model.IndicatorSnapshot) bool { return s.RSI14.Float() < SellRSIMax }},
}

func allMet(conds []condition, s *model.IndicatorSnapshot) bool {
	for _, c := range conds {
		if !c.Met(s) {
			return false
		}
	}
	return true
}

// Unmet lists the Buy and Sell conditions that failed, for logging a Hold.
func Unmet(s *model.IndicatorSnapshot) (buy, sell []string) {
	for _, c := range buyConditions {
		if !c.Met(s) {
			buy = append(buy, c.Name)
		}
	}
	for _, c := range sellConditions {
		if !c.Met(s) {
			sell = append(sell, c.Name)
		}
	}
	return buy, sell
}
