package model

// AnalysisResult is the external result contract. Unavailable values are 0.
type AnalysisResult struct {
	Symbol           string         `json:"symbol"`
	Timeframe        Timeframe      `json:"timeframe"`
	CurrentPrice     float64        `json:"currentPrice"`
	High52w          float64        `json:"high52w"`
	Low52w           float64        `json:"low52w"`
	EMA21            float64        `json:"ema21"`
	EMA50            float64        `json:"ema50"`
	EMA100           float64        `json:"ema100"`
	EMA200           float64        `json:"ema200"`
	SMA21            float64        `json:"sma21"`
	SMA50            float64        `json:"sma50"`
	SMA100           float64        `json:"sma100"`
	SMA200           float64        `json:"sma200"`
	RSI              float64        `json:"rsi"`
	ADX              float64        `json:"adx"`
	PSAR             float64        `json:"psar"`
	DonchianUpper    float64        `json:"donchianUpper"`
	VStop            float64        `json:"vstop"`
	RelativeStrength float64        `json:"relativeStrength"`
	ChartPattern     string         `json:"chartPattern"`
	Recommendation   Recommendation `json:"recommendation"`
	PE               float64        `json:"pe"`
	ForwardPE        float64        `json:"forwardPE"`
	EPS              float64        `json:"eps"`
	ForwardEPS       float64        `json:"forwardEPS"`
	PriceToBook      float64        `json:"priceToBook"`
	CFOPAT           float64        `json:"cfoPat"`
	InterestCoverage float64        `json:"interestCoverage"`
	News             []NewsItem     `json:"news"`
}
