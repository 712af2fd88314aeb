package distribution

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
)

func mustParam(t *testing.T, name string) Parameter {
	t.Helper()
	p, err := NewParameter(name, "Label", "Description.", 0, -10, 10, 0.1)
	if err != nil {
		t.Fatalf("NewParameter(%q): %v", name, err)
	}
	return p
}

func validMetadata(t *testing.T) Metadata {
	t.Helper()
	return Metadata{
		Kind:        KindUniform,
		Name:        "Uniform distribution",
		Description: "Flat density on an interval.",
		Category:    CategoryContinuous,
		Tags:        []string{"basic", "continuous"},
		PDFFormula:  `f(x) = \frac{1}{b-a}`,
		Parameters:  []Parameter{mustParam(t, "a"), mustParam(t, "b")},
	}
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Metadata)
		wantErr error
	}{
		{
			name:   "valid metadata",
			mutate: func(m *Metadata) {},
		},
		{
			name:    "empty name",
			mutate:  func(m *Metadata) { m.Name = "" },
			wantErr: core.ErrInvalidFieldLength,
		},
		{
			name:    "name too long",
			mutate:  func(m *Metadata) { m.Name = strings.Repeat("n", 101) },
			wantErr: core.ErrInvalidFieldLength,
		},
		{
			name:    "empty description",
			mutate:  func(m *Metadata) { m.Description = "" },
			wantErr: core.ErrInvalidFieldLength,
		},
		{
			name:    "empty pdf formula",
			mutate:  func(m *Metadata) { m.PDFFormula = "" },
			wantErr: core.ErrInvalidFieldLength,
		},
		{
			name:    "no parameters",
			mutate:  func(m *Metadata) { m.Parameters = nil },
			wantErr: core.ErrParameterCount,
		},
		{
			name:    "empty tag",
			mutate:  func(m *Metadata) { m.Tags = []string{"basic", ""} },
			wantErr: core.ErrInvalidTag,
		},
		{
			name:    "tag too long",
			mutate:  func(m *Metadata) { m.Tags = []string{strings.Repeat("t", 31)} },
			wantErr: core.ErrInvalidTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata(t)
			tt.mutate(&m)
			_, err := NewMetadata(m)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewMetadata() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMetadata() unexpected error: %v", err)
			}
		})
	}
}

func TestNewMetadataTooManyParameters(t *testing.T) {
	m := validMetadata(t)
	m.Parameters = nil
	for i := 0; i < 21; i++ {
		m.Parameters = append(m.Parameters, mustParam(t, "p"+strings.Repeat("x", i)))
	}
	if _, err := NewMetadata(m); !errors.Is(err, core.ErrParameterCount) {
		t.Fatalf("error = %v, want %v", err, core.ErrParameterCount)
	}
}

func TestNewMetadataDeduplicatesTags(t *testing.T) {
	m := validMetadata(t)
	m.Tags = []string{"basic", "continuous", "basic", "uniform", "continuous"}

	got, err := NewMetadata(m)
	if err != nil {
		t.Fatalf("NewMetadata(): %v", err)
	}
	want := []string{"basic", "continuous", "uniform"}
	if !reflect.DeepEqual(got.Tags, want) {
		t.Errorf("Tags = %v, want %v (first-seen order)", got.Tags, want)
	}
}

func TestNewMetadataTooManyTags(t *testing.T) {
	m := validMetadata(t)
	m.Tags = nil
	for i := 0; i < 21; i++ {
		m.Tags = append(m.Tags, "tag"+strings.Repeat("x", i))
	}
	if _, err := NewMetadata(m); !errors.Is(err, core.ErrTooManyTags) {
		t.Fatalf("error = %v, want %v", err, core.ErrTooManyTags)
	}
}

func TestNewMetadataDuplicateParameterNames(t *testing.T) {
	m := validMetadata(t)
	m.Parameters = []Parameter{mustParam(t, "a"), mustParam(t, "a"), mustParam(t, "b")}

	_, err := NewMetadata(m)
	if !errors.Is(err, core.ErrDuplicateParameterName) {
		t.Fatalf("error = %v, want %v", err, core.ErrDuplicateParameterName)
	}
	// Both offending occurrences must be named, and nothing else.
	if !strings.HasSuffix(err.Error(), ": a, a") {
		t.Errorf("error %q should end with both duplicate occurrences %q", err.Error(), "a, a")
	}
}
