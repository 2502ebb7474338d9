package model

// Fundamentals is the optional bag of valuation ratios. Nil fields are unavailable.
type Fundamentals struct {
	PE               *float64
	ForwardPE        *float64
	EPS              *float64
	ForwardEPS       *float64
	PriceToBook      *float64
	CFOPAT           *float64 // operating cash flow / profit after tax
	InterestCoverage *float64
}

// NewsItem is a scored headline or corporate announcement.
type NewsItem struct {
	Title          string  `json:"title"`
	Link           string  `json:"link,omitempty"`
	Publisher      string  `json:"publisher,omitempty"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	Interpretation string  `json:"interpretation,omitempty"`
	Type           string  `json:"type,omitempty"`
}
