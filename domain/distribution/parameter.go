package distribution

import (
	"fmt"
	"regexp"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

var parameterNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Parameter describes one scalar input a distribution accepts. The bounds
// and step drive the slider the frontend renders for it.
type Parameter struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	Description  string  `json:"description"`
	DefaultValue float64 `json:"default_value"`
	MinValue     float64 `json:"min_value"`
	MaxValue     float64 `json:"max_value"`
	Step         float64 `json:"step"`
}

// NewParameter runs the field-level checks, then the cross-field range
// checks. A violation is a construction failure, never a silent clamp.
func NewParameter(name, label, description string, defaultValue, minValue, maxValue, step float64) (Parameter, error) {
	p := Parameter{
		Name:         name,
		Label:        label,
		Description:  description,
		DefaultValue: defaultValue,
		MinValue:     minValue,
		MaxValue:     maxValue,
		Step:         step,
	}
	if err := p.validateFields(); err != nil {
		return Parameter{}, err
	}
	if err := p.validateRange(); err != nil {
		return Parameter{}, err
	}
	return p, nil
}

func (p Parameter) validateFields() error {
	if len(p.Name) < 1 || len(p.Name) > 50 || !parameterNamePattern.MatchString(p.Name) {
		return fmt.Errorf("%w: %q", core.ErrInvalidParameterName, p.Name)
	}
	if l := len(p.Label); l < 1 || l > 100 {
		return fmt.Errorf("%w: label for %q has %d characters, want 1-100", core.ErrInvalidFieldLength, p.Name, l)
	}
	if l := len(p.Description); l < 1 || l > 500 {
		return fmt.Errorf("%w: description for %q has %d characters, want 1-500", core.ErrInvalidFieldLength, p.Name, l)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: parameter %q has step %g", core.ErrInvalidStep, p.Name, p.Step)
	}
	return nil
}

func (p Parameter) validateRange() error {
	if p.MinValue >= p.MaxValue {
		return core.NewParameterRangeError(p.Name, p.MinValue, p.MaxValue)
	}
	if p.DefaultValue < p.MinValue || p.DefaultValue > p.MaxValue {
		return core.NewDefaultOutOfRangeError(p.Name, p.DefaultValue, p.MinValue, p.MaxValue)
	}
	return nil
}
