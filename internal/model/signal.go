package model

import (
	"fmt"
	"strings"
)

// Action is the recommended trade direction.
type Action string

const (
	ActionBuy  Action = "Buy"
	ActionSell Action = "Sell"
	ActionHold Action = "Hold"
)

// Timeframe is the bar resolution an analysis runs on.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// ParseTimeframe accepts daily, weekly or monthly in any case.
func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(strings.ToLower(strings.TrimSpace(s))); tf {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly:
		return tf, nil
	default:
		return "", &ValidationError{Field: "timeframe", Reason: fmt.Sprintf("unknown timeframe %q", s)}
	}
}

// Interval returns the bar interval and history range fetched for the timeframe.
func (tf Timeframe) Interval() (interval, rng string) {
	switch tf {
	case TimeframeWeekly:
		return "1wk", "5y"
	case TimeframeMonthly:
		return "1mo", "10y"
	default:
		return "1d", "2y"
	}
}

// Recommendation is the final output of the signal engine.
type Recommendation struct {
	Action    Action    `json:"action"`
	Reason    string    `json:"reason"`
	Timeframe Timeframe `json:"timeframe"`
}
