package news

import (
	"strings"
	"unicode"
)

// Sentiment labels.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// impactThreshold is the confidence above which a headline is called out as
// moving the price.
const impactThreshold = 0.75

// Scorer classifies a headline. score is the confidence in label, in [0, 1].
type Scorer interface {
	Score(text string) (label string, score float64, err error)
}

// Interpret turns a label and confidence into a one line reading.
func Interpret(label string, score float64) string {
	switch {
	case strings.EqualFold(label, LabelPositive) && score > impactThreshold:
		return "This is likely to have a positive impact on the stock price."
	case strings.EqualFold(label, LabelNegative) && score > impactThreshold:
		return "This could potentially have a negative impact on the stock price."
	default:
		return "This could be a neutral signal for the stock."
	}
}

// LexiconScorer is a deterministic word-list classifier tuned for Indian
// market headlines.
type LexiconScorer struct {
	positive map[string]bool
	negative map[string]bool
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{positive: set(positiveWords), negative: set(negativeWords)}
}

// Score counts lexicon hits. A single hit gives 0.75; two or more hits on
// one side give full confidence. Ties and misses are neutral at 0.5.
func (s *LexiconScorer) Score(text string) (string, float64, error) {
	var pos, neg int
	for _, w := range tokenize(text) {
		switch {
		case s.positive[w]:
			pos++
		case s.negative[w]:
			neg++
		}
	}
	hits := pos + neg
	if hits == 0 || pos == neg {
		return LabelNeutral, 0.5, nil
	}
	net := float64(abs(pos-neg)) / float64(hits)
	score := 0.5 + 0.5*net*min(1, float64(hits)/2)
	if pos > neg {
		return LabelPositive, score, nil
	}
	return LabelNegative, score, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
}

func set(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var positiveWords = []string{
	"surge", "surges", "soar", "soars", "jump", "jumps", "rally", "rallies", "gain", "gains",
	"rise", "rises", "climb", "climbs", "beat", "beats", "record", "profit", "profits",
	"growth", "upgrade", "upgrades", "upgraded", "outperform", "buy", "bullish", "strong",
	"wins", "win", "bags", "order", "orders", "expansion", "dividend", "bonus", "buyback",
	"approval", "approves", "acquires", "acquisition", "partnership", "robust", "higher",
	"boost", "boosts", "optimistic", "upbeat", "recovery", "breakout", "high",
}

var negativeWords = []string{
	"fall", "falls", "drop", "drops", "plunge", "plunges", "slump", "slumps", "decline",
	"declines", "loss", "losses", "miss", "misses", "downgrade", "downgrades", "downgraded",
	"underperform", "sell", "bearish", "weak", "weaker", "crash", "crashes", "tumble",
	"tumbles", "probe", "penalty", "fine", "fraud", "default", "resigns", "resignation",
	"lower", "cut", "cuts", "slowdown", "pressure", "concern", "concerns", "lawsuit",
	"raid", "pledge", "downturn", "low", "sinks", "slides", "warning",
}
