package distribution

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

// uniformMarginRatio widens the sampled span beyond [a, b] by a fixed
// fraction of the range so both density discontinuities stay visible in
// the rendered curve. Display tuning only, not part of the contract.
const uniformMarginRatio = 0.2

// Uniform is the continuous uniform distribution on [a, b].
type Uniform struct{}

func (Uniform) Describe() (Metadata, error) {
	lower, err := NewParameter(
		"a",
		"Lower bound (a)",
		"Lower edge of the interval. Mass is spread evenly from this value upward.",
		0.0, -10.0, 10.0, 0.1,
	)
	if err != nil {
		return Metadata{}, err
	}
	upper, err := NewParameter(
		"b",
		"Upper bound (b)",
		"Upper edge of the interval. Mass is spread evenly up to this value.",
		1.0, -10.0, 10.0, 0.1,
	)
	if err != nil {
		return Metadata{}, err
	}
	return NewMetadata(Metadata{
		Kind:        KindUniform,
		Name:        "Uniform distribution",
		Description: "Continuous distribution with equal density everywhere on the interval [a, b]. Every value in the interval is equally likely.",
		Category:    CategoryContinuous,
		Tags:        []string{"basic", "continuous", "uniform", "equiprobable"},
		PDFFormula:  `f(x) = \begin{cases} \frac{1}{b-a} & \text{if } a \leq x \leq b \\ 0 & \text{otherwise} \end{cases}`,
		CDFFormula:  `F(x) = \begin{cases} 0 & \text{if } x < a \\ \frac{x-a}{b-a} & \text{if } a \leq x \leq b \\ 1 & \text{if } x > b \end{cases}`,
		Parameters:  []Parameter{lower, upper},
	})
}

// Compute samples [a - 0.2(b-a), b + 0.2(b-a)] evenly and evaluates the
// closed-form density and cumulative there. The margin guarantees the
// first sample sits below a (cdf exactly 0) and the last above b (cdf
// exactly 1). Moments come from the closed forms, never from the samples.
func (Uniform) Compute(params Params, samples int) (Result, error) {
	a, b := params["a"], params["b"]
	if a >= b {
		return Result{}, core.NewInvalidBoundsError(string(KindUniform), a, b)
	}
	n, err := normalizeSamples(samples)
	if err != nil {
		return Result{}, err
	}

	dist := distuv.Uniform{Min: a, Max: b}
	margin := (b - a) * uniformMarginRatio

	x := make([]float64, n)
	floats.Span(x, a-margin, b+margin)
	pdf := make([]float64, n)
	cdf := make([]float64, n)
	for i, xv := range x {
		pdf[i] = dist.Prob(xv)
		cdf[i] = dist.CDF(xv)
	}

	return NewResult(x, pdf, cdf, dist.Mean(), dist.Variance(), dist.StdDev())
}
