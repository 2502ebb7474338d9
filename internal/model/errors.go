package model

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// InsufficientDataError reports a series shorter than an indicator's warm-up.
type InsufficientDataError struct {
	Indicator string
	Need      int
	Have      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need more than %d bars, have %d", e.Indicator, e.Need, e.Have)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInsufficientData(err error) bool {
	var ie *InsufficientDataError
	return errors.As(err, &ie)
}

// NoDataError reports that a provider returned no bars for a symbol.
type NoDataError struct {
	Symbol    string
	Timeframe Timeframe
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("No data found for ticker %s on a %s timeframe.", e.Symbol, e.Timeframe)
}

func IsNoData(err error) bool {
	var ne *NoDataError
	return errors.As(err, &ne)
}
