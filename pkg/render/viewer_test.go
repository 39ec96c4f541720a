package render

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestExtractHeadings(t *testing.T) {
	raw := "# Title\n\nSome text.\n\n## Section One\n\nMore text.\n\n## Section Two\n\nEnd.\n"
	rendered, err := RenderMarkdown(raw, 80, false)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	headings := extractHeadings(raw, rendered)
	if len(headings) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(headings))
	}
	for i, want := range []string{"Title", "Section One", "Section Two"} {
		if headings[i].text != want {
			t.Errorf("heading %d: expected %q, got %q", i, want, headings[i].text)
		}
	}
	for i := 1; i < len(headings); i++ {
		if headings[i].line <= headings[i-1].line {
			t.Errorf("heading %d (line %d) should be after heading %d (line %d)",
				i, headings[i].line, i-1, headings[i-1].line)
		}
	}
}

func TestExtractHeadingsEmpty(t *testing.T) {
	raw := "No headings here.\n\nJust paragraphs.\n"
	rendered, _ := RenderMarkdown(raw, 80, false)
	if headings := extractHeadings(raw, rendered); len(headings) != 0 {
		t.Errorf("expected 0 headings, got %d", len(headings))
	}
}

func TestViewerLoadingBeforeSize(t *testing.T) {
	v := NewViewer("Rules", "# Test\n", "Test\n")
	if view := v.View(); view != "Loading..." {
		t.Errorf("expected loading message before ready, got %q", view)
	}
}

func TestViewerView(t *testing.T) {
	raw := "# Rules\n\n## One\n\ntext\n"
	rendered, _ := RenderMarkdown(raw, 80, false)

	var m tea.Model = NewViewer("Decoy rules", raw, rendered)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()

	if !strings.Contains(view, "Decoy rules") {
		t.Error("expected title in header")
	}
	if !strings.Contains(view, "n/N sections") {
		t.Error("expected section hint in footer")
	}
}

func TestViewerHeadingNavigation(t *testing.T) {
	raw := "# Title\n\n" + strings.Repeat("Paragraph.\n\n", 30) + "## Section A\n\n" + strings.Repeat("Text.\n\n", 30) + "## Section B\n\nMore.\n"
	rendered, _ := RenderMarkdown(raw, 80, false)

	var m tea.Model = NewViewer("Test", raw, rendered)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	v := m.(Viewer)
	if len(v.headings) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(v.headings))
	}
	v.viewport.SetYOffset(v.headings[0].line)
	m = v

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	v = m.(Viewer)
	if v.viewport.YOffset != v.headings[1].line {
		t.Errorf("expected offset %d after n, got %d", v.headings[1].line, v.viewport.YOffset)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}})
	v = m.(Viewer)
	if v.viewport.YOffset != v.headings[0].line {
		t.Errorf("expected offset %d after N, got %d", v.headings[0].line, v.viewport.YOffset)
	}
}

func TestViewerQuit(t *testing.T) {
	var m tea.Model = NewViewer("T", "", "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
