package distribution

import (
	"fmt"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

// Kind identifies a supported distribution. The set is closed at compile
// time; extending it means adding an implementation and a registry entry.
type Kind string

const (
	KindUniform     Kind = "uniform"
	KindExponential Kind = "exponential"
)

// Category groups catalog entries for the frontend's browse view.
type Category string

const (
	CategoryContinuous       Category = "continuous"
	CategoryDiscrete         Category = "discrete"
	CategoryMultivariate     Category = "multivariate"
	CategoryMLRegression     Category = "ml_regression"
	CategoryMLClassification Category = "ml_classification"
	CategoryMLClustering     Category = "ml_clustering"
)

const (
	maxTags       = 20
	maxTagLength  = 30
	maxParameters = 20
)

// Metadata describes one distribution kind: identity, display text, and the
// ordered parameter list that drives the input form. Field names on the
// wire match what the visualization frontend already consumes.
type Metadata struct {
	Kind        Kind        `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Tags        []string    `json:"tags"`
	PDFFormula  string      `json:"formula_pdf"`
	CDFFormula  string      `json:"formula_cdf,omitempty"`
	Parameters  []Parameter `json:"parameters"`
}

// NewMetadata validates and normalizes a metadata value. Field-level checks
// run first, then the whole-object consistency pass. Tag de-duplication is
// a normalization, not a failure: duplicates collapse to first-seen order.
func NewMetadata(m Metadata) (Metadata, error) {
	if err := m.validateFields(); err != nil {
		return Metadata{}, err
	}
	tags, err := normalizeTags(m.Tags)
	if err != nil {
		return Metadata{}, err
	}
	m.Tags = tags
	if err := m.validateParameterNames(); err != nil {
		return Metadata{}, err
	}
	return m, nil
}

func (m Metadata) validateFields() error {
	if l := len(m.Name); l < 1 || l > 100 {
		return fmt.Errorf("%w: name has %d characters, want 1-100", core.ErrInvalidFieldLength, l)
	}
	if l := len(m.Description); l < 1 || l > 1000 {
		return fmt.Errorf("%w: description has %d characters, want 1-1000", core.ErrInvalidFieldLength, l)
	}
	if len(m.PDFFormula) < 1 {
		return fmt.Errorf("%w: formula_pdf is empty", core.ErrInvalidFieldLength)
	}
	if n := len(m.Parameters); n < 1 || n > maxParameters {
		return fmt.Errorf("%w: got %d, want 1-%d", core.ErrParameterCount, n, maxParameters)
	}
	return nil
}

// normalizeTags drops duplicates preserving first-seen order, then checks
// each surviving tag's length and the total count.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}
	for _, tag := range unique {
		if len(tag) == 0 || len(tag) > maxTagLength {
			return nil, core.NewInvalidTagError(tag)
		}
	}
	if len(unique) > maxTags {
		return nil, fmt.Errorf("%w: got %d, want at most %d", core.ErrTooManyTags, len(unique), maxTags)
	}
	return unique, nil
}

// validateParameterNames reports every occurrence of a duplicated name so
// the defect message points at both offending entries.
func (m Metadata) validateParameterNames() error {
	counts := make(map[string]int, len(m.Parameters))
	for _, p := range m.Parameters {
		counts[p.Name]++
	}
	var duplicates []string
	for _, p := range m.Parameters {
		if counts[p.Name] > 1 {
			duplicates = append(duplicates, p.Name)
		}
	}
	if len(duplicates) > 0 {
		return core.NewDuplicateParameterNameError(duplicates)
	}
	return nil
}
