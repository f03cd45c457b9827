// Package readme renders dependency selections into a Markdown document.
package readme

import (
	"strings"

	"github.com/dbmrq/depdoc/internal/deps"
)

const (
	// DefaultTitle is the document heading used when none is configured.
	DefaultTitle = "My Awesome Project"
	// DefaultFilename is the file name the document is exported as.
	DefaultFilename = "README.md"
	// MediaType is the MIME type of the generated document.
	MediaType = "text/markdown"
)

// Generator renders Markdown from a deps.Set.
type Generator struct {
	title string
}

// NewGenerator creates a Generator. An empty title means DefaultTitle.
func NewGenerator(title string) *Generator {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return &Generator{title: title}
}

// Title returns the heading the generator renders.
func (g *Generator) Title() string {
	return g.title
}

// Generate renders set. Only included names are listed, one "- name" bullet
// per line in sorted order, under a "Dependencies" and a "Development
// Dependencies" section. A section with no included names keeps its heading
// and has no bullets.
func (g *Generator) Generate(set deps.Set) string {
	var b strings.Builder

	b.WriteString("\n# ")
	b.WriteString(g.title)
	b.WriteString("\n\n")

	b.WriteString("## ")
	b.WriteString(deps.Runtime.String())
	b.WriteString("\n")
	b.WriteString(bulletList(set.Runtime))
	b.WriteString("\n\n")

	b.WriteString("## ")
	b.WriteString(deps.Dev.String())
	b.WriteString("\n")
	b.WriteString(bulletList(set.Dev))
	b.WriteString("\n")

	return b.String()
}

// Generate renders set with DefaultTitle.
func Generate(set deps.Set) string {
	return NewGenerator(DefaultTitle).Generate(set)
}

func bulletList(sel deps.Selection) string {
	names := sel.Included()
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = "- " + name
	}
	return strings.Join(lines, "\n")
}
