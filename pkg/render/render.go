// Package render turns rule tables and rewrite reports into markdown, and
// markdown into styled terminal output or a standalone HTML page.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// RenderMarkdown renders markdown to styled terminal output using Glamour.
// Passing color=false selects the plain ASCII style, for --no-color and
// pipes.
func RenderMarkdown(markdown string, width int, color bool) (string, error) {
	if width <= 0 {
		width = 80
	}

	styleOpt := glamour.WithStyles(decoyStyle())
	if !color {
		styleOpt = glamour.WithStyles(styles.ASCIIStyleConfig)
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// decoyStyle is the dark style with quieter headings and a thin rule.
func decoyStyle() ansi.StyleConfig {
	s := styles.DarkStyleConfig
	s.H1.BackgroundColor = stringPtr("#5f00af")
	s.HorizontalRule.Format = "\n──────────\n"
	return s
}

func stringPtr(s string) *string { return &s }
