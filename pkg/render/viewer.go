package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	PaddingLeft(1)

var footerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	PaddingLeft(1)

// headingPos tracks a heading's location in the rendered content.
type headingPos struct {
	text string
	line int // line number in rendered content
}

// Viewer is a Bubble Tea model for paging through rendered markdown with
// section navigation.
type Viewer struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	headings []headingPos
}

// NewViewer creates a viewer for raw markdown and its rendered form.
func NewViewer(title, raw, rendered string) Viewer {
	return Viewer{
		title:    title,
		content:  rendered,
		headings: extractHeadings(raw, rendered),
	}
}

// Init initializes the viewer.
func (v Viewer) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !v.ready {
			v.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			v.viewport.YPosition = headerHeight
			v.viewport.SetContent(v.content)
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = msg.Height - headerHeight - footerHeight
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "n":
			v.nextHeading()
			return v, nil
		case "N":
			v.prevHeading()
			return v, nil
		}
	}

	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the viewer.
func (v Viewer) View() string {
	if !v.ready {
		return "Loading..."
	}

	header := headerStyle.Render(v.title)
	hints := " %3.f%%"
	if len(v.headings) > 0 {
		hints += " │ n/N sections"
	}
	hints += " │ q quit"
	footer := footerStyle.Render(fmt.Sprintf(hints, v.viewport.ScrollPercent()*100))

	return strings.Join([]string{header, "", v.viewport.View(), "", footer}, "\n")
}

// RunViewer renders markdown and pages through it in the alternate screen.
func RunViewer(title, markdown string) error {
	rendered, err := RenderMarkdown(markdown, 0, true)
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewViewer(title, markdown, rendered), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// --- Section navigation ---

// headingPattern matches markdown headings in raw markdown.
var headingPattern = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// extractHeadings scans raw markdown for headings and maps them to line
// positions in the rendered content.
func extractHeadings(raw, rendered string) []headingPos {
	matches := headingPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	renderedLines := strings.Split(rendered, "\n")
	var headings []headingPos
	searchFrom := 0

	for _, m := range matches {
		text := strings.TrimSpace(m[1])
		for i := searchFrom; i < len(renderedLines); i++ {
			if strings.Contains(renderedLines[i], text) {
				headings = append(headings, headingPos{text: text, line: i})
				searchFrom = i + 1
				break
			}
		}
	}
	return headings
}

func (v *Viewer) nextHeading() {
	if len(v.headings) == 0 {
		return
	}
	current := v.viewport.YOffset
	for _, h := range v.headings {
		if h.line > current {
			v.viewport.SetYOffset(h.line)
			return
		}
	}
	v.viewport.SetYOffset(v.headings[0].line)
}

func (v *Viewer) prevHeading() {
	if len(v.headings) == 0 {
		return
	}
	current := v.viewport.YOffset
	for i := len(v.headings) - 1; i >= 0; i-- {
		if v.headings[i].line < current {
			v.viewport.SetYOffset(v.headings[i].line)
			return
		}
	}
	v.viewport.SetYOffset(v.headings[len(v.headings)-1].line)
}
