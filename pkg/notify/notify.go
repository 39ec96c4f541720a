// Package notify prints short styled notices when the clipboard is rewritten.
package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jcadam/decoy/pkg/classify"
)

// Notifier writes one line per rewrite.
type Notifier struct {
	mu      sync.Mutex
	w       io.Writer
	message string
	enabled bool

	badge  lipgloss.Style
	text   lipgloss.Style
	detail lipgloss.Style
}

// New creates a Notifier writing to w. color is the rendering.color config
// value: "always" forces ANSI colors, "never" strips them, anything else
// detects from w.
func New(w io.Writer, message string, enabled bool, color string) *Notifier {
	r := lipgloss.NewRenderer(w)
	ApplyColorMode(r, color)
	return &Notifier{
		w:       w,
		message: message,
		enabled: enabled,
		badge:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Padding(0, 1),
		text:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		detail:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// ApplyColorMode sets the color profile of r from a rendering.color value.
// A nil r changes the default renderer used by package-level lipgloss styles.
func ApplyColorMode(r *lipgloss.Renderer, mode string) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	switch strings.ToLower(mode) {
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	}
}

// Rewritten announces that a URL was rewritten and which categories were
// replaced. It is a no-op when notifications are disabled.
func (n *Notifier) Rewritten(cats []classify.Category) {
	if n == nil || !n.enabled {
		return
	}
	line := n.badge.Render("decoy") + " " + n.text.Render(n.message)
	if d := summarize(cats); d != "" {
		line += " " + n.detail.Render("("+d+")")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, line)
}

// summarize lists categories in display order with counts above one,
// e.g. "source, hash×2".
func summarize(cats []classify.Category) string {
	counts := make(map[classify.Category]int, len(cats))
	for _, c := range cats {
		counts[c]++
	}
	var parts []string
	for _, c := range classify.Categories {
		switch n := counts[c]; {
		case n == 1:
			parts = append(parts, c.String())
		case n > 1:
			parts = append(parts, fmt.Sprintf("%s×%d", c, n))
		}
	}
	return strings.Join(parts, ", ")
}
