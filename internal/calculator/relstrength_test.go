package calculator

import (
	"math"
	"testing"

	"StockAnalyzer/internal/model"
)

func scaled(v []float64, k float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}

func TestRelativeStrengthSeries_StartsAtOne(t *testing.T) {
	inst := seriesFromCloses(t, []float64{50, 55, 60, 58}, 0)
	bench := seriesFromCloses(t, []float64{1000, 1010, 990, 1020}, 0)
	ratio, err := RelativeStrengthSeries(inst, bench)
	if err != nil {
		t.Fatalf("RelativeStrengthSeries: %v", err)
	}
	if ratio[0] != 1 {
		t.Errorf("ratio[0] = %v, want 1", ratio[0])
	}
	want := (58.0 / 50) / (1020.0 / 1000)
	if math.Abs(ratio[3]-want) > 1e-12 {
		t.Errorf("ratio[3] = %v, want %v", ratio[3], want)
	}
}

func TestRelativeStrength_Identical(t *testing.T) {
	closes := []float64{10, 12, 9, 15, 14}
	rs, err := RelativeStrength(seriesFromCloses(t, closes, 0), seriesFromCloses(t, closes, 0))
	if err != nil {
		t.Fatalf("RelativeStrength: %v", err)
	}
	if math.Abs(rs-1) > 1e-12 {
		t.Errorf("rs = %v, want 1", rs)
	}
}

func TestRelativeStrength_BenchmarkLevelCancels(t *testing.T) {
	inst := seriesFromCloses(t, []float64{100, 104, 110}, 0)
	benchCloses := []float64{200, 210, 220}
	base, err := RelativeStrength(inst, seriesFromCloses(t, benchCloses, 0))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []float64{0.5, 3, 1000} {
		got, err := RelativeStrength(inst, seriesFromCloses(t, scaled(benchCloses, k), 0))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-base) > 1e-12 {
			t.Errorf("k=%v: rs = %v, want %v", k, got, base)
		}
	}
}

func TestRelativeStrength_BenchmarkPerformance(t *testing.T) {
	inst := seriesFromCloses(t, []float64{100, 120}, 0)
	flat, err := RelativeStrength(inst, seriesFromCloses(t, []float64{100, 100}, 0))
	if err != nil {
		t.Fatal(err)
	}
	doubled, err := RelativeStrength(inst, seriesFromCloses(t, []float64{100, 200}, 0))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(doubled-flat/2) > 1e-12 {
		t.Errorf("benchmark doubling: rs = %v, want %v", doubled, flat/2)
	}
}

func TestRelativeStrength_UsesShorterSeries(t *testing.T) {
	inst := seriesFromCloses(t, []float64{10, 11, 12, 13, 14}, 0)
	bench := seriesFromCloses(t, []float64{10, 10, 10}, 0)
	ratio, err := RelativeStrengthSeries(inst, bench)
	if err != nil {
		t.Fatal(err)
	}
	if len(ratio) != 3 {
		t.Fatalf("len = %d, want 3", len(ratio))
	}
	if math.Abs(ratio[2]-1.2) > 1e-12 {
		t.Errorf("ratio[2] = %v, want 1.2", ratio[2])
	}
}

func TestRelativeStrength_Invalid(t *testing.T) {
	good := seriesFromCloses(t, []float64{10, 11}, 0)
	zero := seriesFromCloses(t, []float64{0, 11}, 0)
	empty := seriesFromCloses(t, nil, 0)

	tests := []struct {
		name       string
		inst, benc *model.PriceSeries
	}{
		{"empty instrument", empty, good},
		{"empty benchmark", good, empty},
		{"nil benchmark", good, nil},
		{"zero first instrument close", zero, good},
		{"zero first benchmark close", good, zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RelativeStrength(tt.inst, tt.benc); !model.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}
