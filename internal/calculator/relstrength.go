package calculator

import "StockAnalyzer/internal/model"

// RelativeStrengthSeries normalizes both series by their first close and
// returns instrument/benchmark per bar. Bars are paired by position, not by
// date, over the shorter of the two series.
func RelativeStrengthSeries(instrument, benchmark *model.PriceSeries) ([]float64, error) {
	ic, err := normalizable("instrument", instrument)
	if err != nil {
		return nil, err
	}
	bc, err := normalizable("benchmark", benchmark)
	if err != nil {
		return nil, err
	}
	n := min(len(ic), len(bc))
	ratio := make([]float64, n)
	for t := 0; t < n; t++ {
		ratio[t] = (ic[t] / ic[0]) / (bc[t] / bc[0])
	}
	return ratio, nil
}

// RelativeStrength returns the latest instrument/benchmark ratio.
func RelativeStrength(instrument, benchmark *model.PriceSeries) (float64, error) {
	ratio, err := RelativeStrengthSeries(instrument, benchmark)
	if err != nil {
		return 0, err
	}
	return ratio[len(ratio)-1], nil
}

func normalizable(field string, s *model.PriceSeries) ([]float64, error) {
	if s.Len() == 0 {
		return nil, &model.ValidationError{Field: field, Reason: "series is empty"}
	}
	closes := s.Closes()
	if closes[0] == 0 {
		return nil, &model.ValidationError{Field: field, Reason: "first close is zero"}
	}
	return closes, nil
}
