package distribution

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

// Params holds named parameter values for a single compute call.
type Params map[string]float64

// Distribution is the capability pair every supported kind implements.
// Describe is pure and deterministic; its metadata passes schema
// validation by construction. Compute is pure given its inputs and
// returns only results that passed the Result acceptance gate.
type Distribution interface {
	Describe() (Metadata, error)
	Compute(params Params, samples int) (Result, error)
}

// The catalog is closed at compile time. Adding a kind means adding one
// implementation and one entry here; callers never change.
var registry = map[Kind]Distribution{
	KindUniform:     Uniform{},
	KindExponential: Exponential{},
}

var kindOrder = []Kind{KindUniform, KindExponential}

// Kinds returns the supported kinds in stable catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// Describe returns the metadata for a kind.
func Describe(kind Kind) (Metadata, error) {
	impl, ok := registry[kind]
	if !ok {
		return Metadata{}, core.NewUnknownKindError(string(kind))
	}
	return impl.Describe()
}

// Compute resolves a kind, checks that every declared parameter was
// supplied, and delegates to the implementation. Domain checks on the
// values themselves belong to the implementation.
func Compute(kind Kind, params Params, samples int) (Result, error) {
	impl, ok := registry[kind]
	if !ok {
		return Result{}, core.NewUnknownKindError(string(kind))
	}
	meta, err := impl.Describe()
	if err != nil {
		return Result{}, err
	}
	for _, p := range meta.Parameters {
		if _, ok := params[p.Name]; !ok {
			return Result{}, core.NewMissingParameterError(string(kind), p.Name)
		}
	}
	return impl.Compute(params, samples)
}

// DefaultParams returns a kind's declared defaults, the values the input
// form starts from.
func DefaultParams(kind Kind) (Params, error) {
	meta, err := Describe(kind)
	if err != nil {
		return nil, err
	}
	params := make(Params, len(meta.Parameters))
	for _, p := range meta.Parameters {
		params[p.Name] = p.DefaultValue
	}
	return params, nil
}

// CheckAll describes and computes every registered kind with its declared
// defaults, in parallel. Run at startup so a defective implementation
// fails the process instead of the first request that hits it.
func CheckAll(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, kind := range kindOrder {
		g.Go(func() error {
			params, err := DefaultParams(kind)
			if err != nil {
				return err
			}
			_, err = Compute(kind, params, DefaultSamples)
			return err
		})
	}
	return g.Wait()
}

// normalizeSamples resolves the sample count for a compute call. Zero
// selects the default; anything else outside the limits is rejected
// rather than clamped so caller bugs surface instead of hiding.
func normalizeSamples(n int) (int, error) {
	if n == 0 {
		return DefaultSamples, nil
	}
	if n < MinSamples || n > MaxSamples {
		return 0, core.NewInvalidSampleCountError(n, MinSamples, MaxSamples)
	}
	return n, nil
}
