package model

// Value is an indicator reading that may be unavailable.
type Value struct {
	V  float64
	OK bool
}

// Some wraps an available reading.
func Some(v float64) Value { return Value{V: v, OK: true} }

// None is the unavailable reading.
var None = Value{}

// Float collapses the reading to the zero sentinel used in results.
func (v Value) Float() float64 {
	if !v.OK {
		return 0
	}
	return v.V
}

// IndicatorSnapshot holds the latest value of every indicator for one request.
type IndicatorSnapshot struct {
	Close         float64
	EMA21         Value
	EMA50         Value
	EMA100        Value
	EMA200        Value
	SMA21         Value
	SMA50         Value
	SMA100        Value
	SMA200        Value
	RSI14         Value
	ADX14         Value
	PSAR          Value
	DonchianUpper Value
	VStop         Value
}
