package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Schema construction errors - always a defect in a distribution
	// implementation, never expected at normal runtime
	ErrParameterRange         = errors.New("min_value must be less than max_value")
	ErrDefaultOutOfRange      = errors.New("default_value outside [min_value, max_value]")
	ErrInvalidParameterName   = errors.New("invalid parameter name")
	ErrInvalidFieldLength     = errors.New("field length out of range")
	ErrInvalidStep            = errors.New("step must be positive")
	ErrDuplicateParameterName = errors.New("duplicate parameter names")
	ErrInvalidTag             = errors.New("tag must be 1-30 characters")
	ErrTooManyTags            = errors.New("too many tags")
	ErrParameterCount         = errors.New("parameter count out of range")
	ErrLengthMismatch         = errors.New("array lengths do not match")
	ErrNonFiniteValue         = errors.New("NaN or Inf value detected")
	ErrArrayLength            = errors.New("array length out of range")
	ErrNegativeMoment         = errors.New("moment must be non-negative")

	// Parameter-domain errors - caller-supplied values outside a
	// distribution's valid domain
	ErrInvalidBounds      = errors.New("lower bound must be less than upper bound")
	ErrInvalidRate        = errors.New("rate must be positive")
	ErrMissingParameter   = errors.New("missing required parameter")
	ErrInvalidSampleCount = errors.New("sample count out of range")

	// Catalog errors
	ErrUnknownKind = errors.New("unknown distribution kind")
)

// Error constructors with context

func NewParameterRangeError(name string, min, max float64) error {
	return fmt.Errorf("%w: parameter %q has min_value %g >= max_value %g", ErrParameterRange, name, min, max)
}

func NewDefaultOutOfRangeError(name string, def, min, max float64) error {
	return fmt.Errorf("%w: parameter %q has default_value %g outside [%g, %g]", ErrDefaultOutOfRange, name, def, min, max)
}

func NewDuplicateParameterNameError(names []string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateParameterName, strings.Join(names, ", "))
}

func NewInvalidTagError(tag string) error {
	return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
}

func NewLengthMismatchError(x, pdf, cdf int) error {
	return fmt.Errorf("%w: x_values=%d pdf_values=%d cdf_values=%d", ErrLengthMismatch, x, pdf, cdf)
}

func NewNonFiniteValueError(field string, index int, value float64) error {
	return fmt.Errorf("%w: %s[%d] = %g", ErrNonFiniteValue, field, index, value)
}

func NewInvalidBoundsError(kind string, a, b float64) error {
	return fmt.Errorf("%w: %s requires a < b, got a=%g b=%g", ErrInvalidBounds, kind, a, b)
}

func NewInvalidRateError(kind string, rate float64) error {
	return fmt.Errorf("%w: %s requires lambda > 0, got %g", ErrInvalidRate, kind, rate)
}

func NewMissingParameterError(kind, name string) error {
	return fmt.Errorf("%w: %s requires %q", ErrMissingParameter, kind, name)
}

func NewInvalidSampleCountError(n, min, max int) error {
	return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSampleCount, n, min, max)
}

func NewUnknownKindError(kind string) error {
	return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Error checking helpers

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrParameterRange) ||
		errors.Is(err, ErrDefaultOutOfRange) ||
		errors.Is(err, ErrInvalidParameterName) ||
		errors.Is(err, ErrInvalidFieldLength) ||
		errors.Is(err, ErrInvalidStep) ||
		errors.Is(err, ErrDuplicateParameterName) ||
		errors.Is(err, ErrInvalidTag) ||
		errors.Is(err, ErrTooManyTags) ||
		errors.Is(err, ErrParameterCount) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrNonFiniteValue) ||
		errors.Is(err, ErrArrayLength) ||
		errors.Is(err, ErrNegativeMoment)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidBounds) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrInvalidSampleCount)
}

func IsUnknownKindError(err error) bool {
	return errors.Is(err, ErrUnknownKind)
}
