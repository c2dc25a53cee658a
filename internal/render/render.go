// Package render turns tag documentation into terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/conneroisu/tagdata/internal/htmldata"
	"github.com/conneroisu/tagdata/internal/registry"
)

// DefaultWidth is the word wrap width used when none is configured.
const DefaultWidth = 80

// Styles accepted by New besides a path to a glamour JSON style file.
var Styles = []string{"auto", "dark", "light", "notty", "ascii"}

// noMarginStyle removes the document margins glamour adds by default.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer renders entry descriptions for hover style display.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer. style is one of Styles or a path to a glamour JSON
// style; width <= 0 selects DefaultWidth.
func New(style string, width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStylePath(style)
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Markup renders one markup body. Markdown goes through glamour, plain text
// is returned trimmed.
func (r *Renderer) Markup(content htmldata.MarkupContent) (string, error) {
	if content.Kind != htmldata.Markdown {
		return strings.TrimSpace(content.Value), nil
	}

	out, err := r.renderer.Render(content.Value)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return strings.TrimRight(out, "\n "), nil
}

// Hover renders an entry the way an editor hover shows it: the description
// body followed by the attribute names, if any.
func (r *Renderer) Hover(entry registry.Entry) (string, error) {
	var b strings.Builder

	body, err := r.Markup(entry.Description)
	if err != nil {
		return "", fmt.Errorf("%s: %w", entry.Name, err)
	}
	b.WriteString(body)

	if len(entry.Attributes) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Attributes: ")
		b.WriteString(strings.Join(entry.AttributeNames(), ", "))
	}

	return b.String(), nil
}

// Raw returns the undecorated description body, as a language server would
// put it in a hover response.
func Raw(entry registry.Entry) string {
	return strings.TrimSpace(entry.Description.Value)
}
