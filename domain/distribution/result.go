package distribution

import (
	"fmt"
	"math"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

// Sample-count limits for a computed curve. Zero passed to a compute call
// selects DefaultSamples; anything else outside [MinSamples, MaxSamples]
// is rejected.
const (
	MinSamples     = 10
	MaxSamples     = 10000
	DefaultSamples = 1000
)

// Result is the computed curve and its summary moments. It is built once
// per compute call from freshly allocated arrays and never mutated.
type Result struct {
	XValues   []float64 `json:"x_values"`
	PDFValues []float64 `json:"pdf_values"`
	CDFValues []float64 `json:"cdf_values"`
	Mean      float64   `json:"mean"`
	Variance  float64   `json:"variance"`
	StdDev    float64   `json:"std_dev"`
}

// NewResult is the acceptance gate every compute routine returns through.
// Field-level checks run first (lengths, finiteness, moment signs), then
// the cross-field length consistency pass. XValues is exempt from the
// finiteness check: sample placement is caller policy, not a computed
// quantity subject to overflow.
func NewResult(xValues, pdfValues, cdfValues []float64, mean, variance, stdDev float64) (Result, error) {
	r := Result{
		XValues:   xValues,
		PDFValues: pdfValues,
		CDFValues: cdfValues,
		Mean:      mean,
		Variance:  variance,
		StdDev:    stdDev,
	}
	if err := r.validateFields(); err != nil {
		return Result{}, err
	}
	if err := r.validateLengths(); err != nil {
		return Result{}, err
	}
	return r, nil
}

func (r Result) validateFields() error {
	for _, field := range []struct {
		name   string
		values []float64
	}{
		{"x_values", r.XValues},
		{"pdf_values", r.PDFValues},
		{"cdf_values", r.CDFValues},
	} {
		if n := len(field.values); n < MinSamples || n > MaxSamples {
			return fmt.Errorf("%w: %s has %d entries, want %d-%d", core.ErrArrayLength, field.name, n, MinSamples, MaxSamples)
		}
	}
	if err := checkFinite("pdf_values", r.PDFValues); err != nil {
		return err
	}
	if err := checkFinite("cdf_values", r.CDFValues); err != nil {
		return err
	}
	if r.Variance < 0 {
		return fmt.Errorf("%w: variance = %g", core.ErrNegativeMoment, r.Variance)
	}
	if r.StdDev < 0 {
		return fmt.Errorf("%w: std_dev = %g", core.ErrNegativeMoment, r.StdDev)
	}
	return nil
}

func (r Result) validateLengths() error {
	if len(r.XValues) != len(r.PDFValues) || len(r.XValues) != len(r.CDFValues) {
		return core.NewLengthMismatchError(len(r.XValues), len(r.PDFValues), len(r.CDFValues))
	}
	return nil
}

func checkFinite(field string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewNonFiniteValueError(field, i, v)
		}
	}
	return nil
}
