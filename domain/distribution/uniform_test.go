package distribution

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/montanaflynn/stats"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

func TestUniformDescribe(t *testing.T) {
	meta, err := Uniform{}.Describe()
	if err != nil {
		t.Fatalf("Describe(): %v", err)
	}
	if meta.Kind != KindUniform {
		t.Errorf("Kind = %q, want %q", meta.Kind, KindUniform)
	}
	if meta.Category != CategoryContinuous {
		t.Errorf("Category = %q, want %q", meta.Category, CategoryContinuous)
	}
	if len(meta.Parameters) != 2 || meta.Parameters[0].Name != "a" || meta.Parameters[1].Name != "b" {
		t.Errorf("Parameters = %v, want a then b", meta.Parameters)
	}
	if meta.CDFFormula == "" {
		t.Error("CDFFormula should be declared for uniform")
	}

	again, err := Uniform{}.Describe()
	if err != nil {
		t.Fatalf("second Describe(): %v", err)
	}
	if !reflect.DeepEqual(meta, again) {
		t.Error("Describe() is not deterministic")
	}
}

func TestUniformComputeBoundaries(t *testing.T) {
	result, err := Uniform{}.Compute(Params{"a": 0, "b": 1}, 0)
	if err != nil {
		t.Fatalf("Compute(): %v", err)
	}

	if n := len(result.XValues); n != DefaultSamples {
		t.Errorf("len(XValues) = %d, want default %d", n, DefaultSamples)
	}

	// The sampled span is [a - 0.2(b-a), b + 0.2(b-a)], so the curve edges
	// sit strictly outside the support and the cdf must be exact there.
	first, last := 0, len(result.XValues)-1
	if result.XValues[first] >= 0 {
		t.Errorf("first sample %g should lie below a", result.XValues[first])
	}
	if result.XValues[last] <= 1 {
		t.Errorf("last sample %g should lie above b", result.XValues[last])
	}
	if result.CDFValues[first] != 0 {
		t.Errorf("cdf below support = %g, want exactly 0", result.CDFValues[first])
	}
	if result.CDFValues[last] != 1 {
		t.Errorf("cdf above support = %g, want exactly 1", result.CDFValues[last])
	}
	if result.PDFValues[first] != 0 || result.PDFValues[last] != 0 {
		t.Error("pdf outside support must be exactly 0")
	}

	if result.Mean != 0.5 {
		t.Errorf("Mean = %g, want 0.5", result.Mean)
	}
	if math.Abs(result.Variance-1.0/12.0) > 1e-15 {
		t.Errorf("Variance = %g, want 1/12", result.Variance)
	}
}

func TestUniformComputeDensityPlateau(t *testing.T) {
	result, err := Uniform{}.Compute(Params{"a": 0, "b": 1}, 1000)
	if err != nil {
		t.Fatalf("Compute(): %v", err)
	}

	// Inside [0,1] the density is exactly 1/(b-a) = 1; outside it is 0.
	maxPDF, err := stats.Max(result.PDFValues)
	if err != nil {
		t.Fatalf("stats.Max: %v", err)
	}
	if maxPDF != 1 {
		t.Errorf("max pdf = %g, want 1", maxPDF)
	}
	minCDF, _ := stats.Min(result.CDFValues)
	maxCDF, _ := stats.Max(result.CDFValues)
	if minCDF != 0 || maxCDF != 1 {
		t.Errorf("cdf range = [%g, %g], want [0, 1]", minCDF, maxCDF)
	}
}

func TestUniformComputeInvalidBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"a greater than b", 5, 3},
		{"a equal to b", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Uniform{}.Compute(Params{"a": tt.a, "b": tt.b}, 0)
			if !errors.Is(err, core.ErrInvalidBounds) {
				t.Fatalf("error = %v, want %v", err, core.ErrInvalidBounds)
			}
		})
	}
}

func TestUniformComputeMomentConsistency(t *testing.T) {
	for _, p := range []Params{
		{"a": 0, "b": 1},
		{"a": -10, "b": 10},
		{"a": 2.5, "b": 2.6},
	} {
		result, err := Uniform{}.Compute(p, 0)
		if err != nil {
			t.Fatalf("Compute(%v): %v", p, err)
		}
		if rel := math.Abs(result.Variance-result.StdDev*result.StdDev) / result.Variance; rel > 1e-9 {
			t.Errorf("Compute(%v): variance %g != std_dev^2 %g (rel %g)", p, result.Variance, result.StdDev*result.StdDev, rel)
		}
	}
}

func TestUniformComputeFiniteness(t *testing.T) {
	for _, n := range []int{MinSamples, 997, MaxSamples} {
		result, err := Uniform{}.Compute(Params{"a": -3, "b": 7}, n)
		if err != nil {
			t.Fatalf("Compute(n=%d): %v", n, err)
		}
		if len(result.XValues) != n {
			t.Errorf("len(XValues) = %d, want %d", len(result.XValues), n)
		}
		// NewResult already gates finiteness; re-assert so a gate
		// regression cannot pass silently.
		for i := range result.PDFValues {
			if math.IsNaN(result.PDFValues[i]) || math.IsInf(result.PDFValues[i], 0) {
				t.Fatalf("pdf[%d] = %g", i, result.PDFValues[i])
			}
		}
	}
}

func TestUniformComputeDeterminism(t *testing.T) {
	a, err := Uniform{}.Compute(Params{"a": 0, "b": 1}, 123)
	if err != nil {
		t.Fatalf("Compute(): %v", err)
	}
	b, err := Uniform{}.Compute(Params{"a": 0, "b": 1}, 123)
	if err != nil {
		t.Fatalf("Compute(): %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated Compute() calls differ")
	}
}
