package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/distribution"
)

func TestMarkdownCoversMetadata(t *testing.T) {
	meta, err := distribution.Describe(distribution.KindUniform)
	require.NoError(t, err)

	md := Markdown(meta)

	assert.Contains(t, md, "# "+meta.Name)
	assert.Contains(t, md, meta.Description)
	assert.Contains(t, md, meta.PDFFormula)
	assert.Contains(t, md, meta.CDFFormula)
	for _, p := range meta.Parameters {
		assert.Contains(t, md, "`"+p.Name+"`")
		assert.Contains(t, md, p.Description)
	}
}

func TestMarkdownOmitsEmptyCDFSection(t *testing.T) {
	meta, err := distribution.Describe(distribution.KindUniform)
	require.NoError(t, err)
	meta.CDFFormula = ""

	assert.NotContains(t, Markdown(meta), "CDF:")
}

func TestHTMLRendersHeadingsAndTable(t *testing.T) {
	meta, err := distribution.Describe(distribution.KindExponential)
	require.NoError(t, err)

	html := string(HTML(meta))

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "lambda")
}
