package distribution

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

// exponentialMeanMultiple sets how far past the mean the sampled span
// extends. Five means covers ~99.3% of the mass, enough for the tail to
// visibly flatten. Display tuning only, not part of the contract.
const exponentialMeanMultiple = 5

// Exponential is the exponential distribution with rate lambda.
type Exponential struct{}

func (Exponential) Describe() (Metadata, error) {
	rate, err := NewParameter(
		"lambda",
		"Rate (λ)",
		"Event rate per unit time. Larger values concentrate mass near zero.",
		1.0, 0.1, 10.0, 0.1,
	)
	if err != nil {
		return Metadata{}, err
	}
	return NewMetadata(Metadata{
		Kind:        KindExponential,
		Name:        "Exponential distribution",
		Description: "Continuous distribution of waiting times between events in a Poisson process. Models the time until the next event occurs.",
		Category:    CategoryContinuous,
		Tags:        []string{"basic", "continuous", "exponential", "waiting-time"},
		PDFFormula:  `f(x) = \begin{cases} \lambda e^{-\lambda x} & \text{if } x \geq 0 \\ 0 & \text{otherwise} \end{cases}`,
		CDFFormula:  `F(x) = \begin{cases} 0 & \text{if } x < 0 \\ 1 - e^{-\lambda x} & \text{if } x \geq 0 \end{cases}`,
		Parameters:  []Parameter{rate},
	})
}

// Compute samples [0, 5/lambda] evenly and evaluates the closed-form
// density and cumulative there. The cumulative at x=0 is exactly 0.
// Moments come from the closed forms, never from the samples.
func (Exponential) Compute(params Params, samples int) (Result, error) {
	lambda := params["lambda"]
	if lambda <= 0 {
		return Result{}, core.NewInvalidRateError(string(KindExponential), lambda)
	}
	n, err := normalizeSamples(samples)
	if err != nil {
		return Result{}, err
	}

	dist := distuv.Exponential{Rate: lambda}
	xMax := dist.Mean() * exponentialMeanMultiple

	x := make([]float64, n)
	floats.Span(x, 0, xMax)
	pdf := make([]float64, n)
	cdf := make([]float64, n)
	for i, xv := range x {
		pdf[i] = dist.Prob(xv)
		cdf[i] = dist.CDF(xv)
	}

	return NewResult(x, pdf, cdf, dist.Mean(), dist.Variance(), dist.StdDev())
}
