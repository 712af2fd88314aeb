// Package docs renders a per-kind reference page: display text, the
// closed-form formulas, and the parameter table, generated straight from
// the catalog metadata so it can never drift from it.
package docs

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/distribution"
)

// Markdown builds the reference page source for one distribution.
func Markdown(meta distribution.Metadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meta.Name)
	fmt.Fprintf(&b, "%s\n\n", meta.Description)
	fmt.Fprintf(&b, "- Kind: `%s`\n", meta.Kind)
	fmt.Fprintf(&b, "- Category: `%s`\n", meta.Category)
	if len(meta.Tags) > 0 {
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(meta.Tags, ", "))
	}
	b.WriteString("\n## Formulas\n\n")
	fmt.Fprintf(&b, "PDF:\n\n```\n%s\n```\n\n", meta.PDFFormula)
	if meta.CDFFormula != "" {
		fmt.Fprintf(&b, "CDF:\n\n```\n%s\n```\n\n", meta.CDFFormula)
	}

	b.WriteString("## Parameters\n\n")
	b.WriteString("| Name | Label | Default | Min | Max | Step |\n")
	b.WriteString("|------|-------|---------|-----|-----|------|\n")
	for _, p := range meta.Parameters {
		fmt.Fprintf(&b, "| `%s` | %s | %g | %g | %g | %g |\n",
			p.Name, p.Label, p.DefaultValue, p.MinValue, p.MaxValue, p.Step)
	}
	b.WriteString("\n")
	for _, p := range meta.Parameters {
		fmt.Fprintf(&b, "`%s` — %s\n\n", p.Name, p.Description)
	}

	return b.String()
}

// HTML renders the reference page to HTML.
func HTML(meta distribution.Metadata) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(Markdown(meta)), p, renderer)
}
