package analysis

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/model"
)

func series(t *testing.T, symbol string, n int, start, step float64) *model.PriceSeries {
	t.Helper()
	t0 := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		c := start + float64(i)*step
		bars[i] = model.OHLCV{Time: t0.AddDate(0, 0, i), Open: c, High: c + 0.5, Low: c - 0.5, Close: c, Volume: 1000}
	}
	s, err := model.NewPriceSeries(symbol, bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	return s
}

func ptr(v float64) *float64 { return &v }

func TestAnalyze_RisingSeriesIsBuy(t *testing.T) {
	in := Input{
		Series:    series(t, "RELIANCE.NS", 300, 100, 1),
		Benchmark: series(t, "^NSEI", 300, 18000, 5),
		Daily:     series(t, "RELIANCE.NS", 252, 148, 1),
		Timeframe: model.TimeframeDaily,
	}
	res, err := Analyze(in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Recommendation.Action != model.ActionBuy {
		t.Fatalf("action = %s, want Buy (result %+v)", res.Recommendation.Action, res)
	}
	if res.CurrentPrice != 399 {
		t.Errorf("currentPrice = %v, want 399", res.CurrentPrice)
	}
	if res.VStop <= 0 || res.VStop >= res.CurrentPrice {
		t.Errorf("vstop = %v, want below close", res.VStop)
	}
	want := (399.0 / 100) / ((18000 + 299*5) / 18000.0)
	if math.Abs(res.RelativeStrength-want) > 1e-9 {
		t.Errorf("relativeStrength = %v, want %v", res.RelativeStrength, want)
	}
	if res.ChartPattern != calculator.PatternNone {
		// Daily highs sit 0.5 above each close, so the last close never reaches the window high.
		t.Errorf("chartPattern = %q", res.ChartPattern)
	}
	if res.High52w != 399.5 || res.Low52w != 147.5 {
		t.Errorf("52w = (%v, %v), want (399.5, 147.5)", res.High52w, res.Low52w)
	}
	if res.News == nil {
		t.Error("news should be an empty list, not nil")
	}
}

func TestAnalyze_FallingSeriesIsSell(t *testing.T) {
	res, err := Analyze(Input{Series: series(t, "YESBANK.NS", 300, 400, -1), Timeframe: model.TimeframeWeekly})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Recommendation.Action != model.ActionSell {
		t.Fatalf("action = %s, want Sell", res.Recommendation.Action)
	}
	if res.VStop <= res.CurrentPrice {
		t.Errorf("short stop %v should sit above close %v", res.VStop, res.CurrentPrice)
	}
	if res.RelativeStrength != 0 || res.High52w != 0 || res.ChartPattern != calculator.PatternNone {
		t.Errorf("missing collaborators should yield zero values: %+v", res)
	}
}

func TestAnalyze_FlatSeriesIsHold(t *testing.T) {
	res, err := Analyze(Input{Series: series(t, "ITC.NS", 120, 250, 0), Timeframe: model.TimeframeMonthly})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Recommendation.Action != model.ActionHold {
		t.Errorf("action = %s, want Hold", res.Recommendation.Action)
	}
	if res.EMA200 != 0 || res.SMA200 != 0 {
		t.Errorf("200-period averages need 200 bars, got ema200=%v sma200=%v", res.EMA200, res.SMA200)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	in := Input{Series: series(t, "HDFCBANK.NS", 300, 100, 1), Timeframe: model.TimeframeDaily}
	a, err := Analyze(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(in)
	if err != nil {
		t.Fatal(err)
	}
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Errorf("results differ:\n%s\n%s", ja, jb)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		check func(error) bool
	}{
		{"unknown timeframe", Input{Series: series(t, "A", 50, 10, 1), Timeframe: "hourly"}, model.IsValidation},
		{"empty series", Input{Series: series(t, "A", 0, 10, 1), Timeframe: model.TimeframeDaily}, model.IsNoData},
		{"nil series", Input{Timeframe: model.TimeframeDaily}, model.IsNoData},
		{"too short for vstop", Input{Series: series(t, "A", 10, 10, 1), Timeframe: model.TimeframeDaily}, model.IsInsufficientData},
		{"bad vstop params", Input{Series: series(t, "A", 50, 10, 1), Timeframe: model.TimeframeDaily, VStop: calculator.VStopParams{ATRPeriod: 14, Lookback: 1}}, model.IsValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.in)
			if !tt.check(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestAnalyze_NoDataMessage(t *testing.T) {
	_, err := Analyze(Input{Series: series(t, "FOO.NS", 0, 1, 1), Timeframe: model.TimeframeWeekly})
	want := "No data found for ticker FOO.NS on a weekly timeframe."
	if err == nil || err.Error() != want {
		t.Errorf("err = %v, want %q", err, want)
	}
}

func TestAnalyze_FundamentalsAndNewsPassThrough(t *testing.T) {
	news := []model.NewsItem{{Title: "Q2 profit rises", Sentiment: "positive", SentimentScore: 0.9}}
	res, err := Analyze(Input{
		Series:       series(t, "TCS.NS", 60, 3000, 2),
		Timeframe:    model.TimeframeDaily,
		Fundamentals: &model.Fundamentals{PE: ptr(28.5), EPS: ptr(120), InterestCoverage: ptr(40)},
		News:         news,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.PE != 28.5 || res.EPS != 120 || res.InterestCoverage != 40 {
		t.Errorf("fundamentals not copied: %+v", res)
	}
	if res.ForwardPE != 0 || res.PriceToBook != 0 {
		t.Errorf("missing fundamentals should be 0: forwardPE=%v pb=%v", res.ForwardPE, res.PriceToBook)
	}
	if len(res.News) != 1 || res.News[0].Title != news[0].Title {
		t.Errorf("news = %+v", res.News)
	}
}

func TestAnalysisResult_JSONKeys(t *testing.T) {
	res, err := Analyze(Input{Series: series(t, "SBIN.NS", 60, 500, 1), Timeframe: model.TimeframeDaily})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{
		"currentPrice", "high52w", "low52w", "ema21", "ema50", "ema100", "ema200",
		"sma21", "sma50", "sma100", "sma200", "rsi", "adx", "psar", "donchianUpper",
		"vstop", "relativeStrength", "chartPattern", "recommendation", "pe", "forwardPE",
		"eps", "forwardEPS", "priceToBook", "cfoPat", "interestCoverage", "news",
	} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	rec, ok := m["recommendation"].(map[string]any)
	if !ok || rec["action"] == nil || rec["reason"] == nil {
		t.Errorf("recommendation = %v", m["recommendation"])
	}
}
