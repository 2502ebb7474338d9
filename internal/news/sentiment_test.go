package news

import (
	"math"
	"testing"
)

func TestLexiconScorer(t *testing.T) {
	s := NewLexiconScorer()
	tests := []struct {
		text  string
		label string
		score float64
	}{
		{"Reliance profit surges to record high", LabelPositive, 1},
		{"HDFC Bank shares fall", LabelNegative, 0.75},
		{"Board meeting scheduled for Tuesday", LabelNeutral, 0.5},
		{"Profit rises but margins under pressure", LabelPositive, 0.5 + 0.5/3},
		{"Gains and losses", LabelNeutral, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			label, score, err := s.Score(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if label != tt.label || math.Abs(score-tt.score) > 1e-9 {
				t.Errorf("got (%s, %v), want (%s, %v)", label, score, tt.label, tt.score)
			}
		})
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		label string
		score float64
		want  string
	}{
		{"positive", 0.9, "This is likely to have a positive impact on the stock price."},
		{"Positive", 0.76, "This is likely to have a positive impact on the stock price."},
		{"positive", 0.75, "This could be a neutral signal for the stock."},
		{"negative", 0.8, "This could potentially have a negative impact on the stock price."},
		{"neutral", 0.99, "This could be a neutral signal for the stock."},
	}
	for _, tt := range tests {
		if got := Interpret(tt.label, tt.score); got != tt.want {
			t.Errorf("Interpret(%s, %v) = %q", tt.label, tt.score, got)
		}
	}
}
