package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jcadam/decoy/pkg/classify"
)

func TestRewrittenPlain(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, "Tracking parameters randomized!", true, "never")
	n.Rewritten([]classify.Category{classify.Hash, classify.Source, classify.Hash})

	got := buf.String()
	want := " decoy  Tracking parameters randomized! (source, hash×2)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRewrittenNoCategories(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "done", true, "never").Rewritten(nil)
	if strings.Contains(buf.String(), "(") {
		t.Errorf("expected no detail, got %q", buf.String())
	}
}

func TestRewrittenDisabled(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "x", false, "auto").Rewritten([]classify.Category{classify.Term})
	if buf.Len() != 0 {
		t.Errorf("disabled notifier wrote %q", buf.String())
	}

	var nilNotifier *Notifier
	nilNotifier.Rewritten(nil) // must not panic
}

func TestColorModeAlways(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "colored", true, "always").Rewritten(nil)
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes with color=always, got %q", buf.String())
	}
}

func TestApplyColorMode(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	ApplyColorMode(r, "ALWAYS")
	if r.ColorProfile() != termenv.ANSI256 {
		t.Errorf("expected ANSI256, got %v", r.ColorProfile())
	}
	ApplyColorMode(r, "never")
	if r.ColorProfile() != termenv.Ascii {
		t.Errorf("expected Ascii, got %v", r.ColorProfile())
	}
	ApplyColorMode(r, "auto")
	if r.ColorProfile() != termenv.Ascii {
		t.Error("auto must leave the profile alone")
	}
}

func TestSummarizeOrder(t *testing.T) {
	got := summarize([]classify.Category{classify.Generic, classify.Medium, classify.Source})
	if got != "source, medium, generic" {
		t.Errorf("unexpected summary %q", got)
	}
}
