package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	// Must not panic.
	l.Printf("hello %s", "world")
	l.Section("test")
	if l.Named("watch") != nil {
		t.Error("expected Named on nil logger to return nil")
	}
	if l.Enabled() {
		t.Error("nil logger reports enabled")
	}
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Printf("classified %s as %s", "fbclid", "hash")

	if got := buf.String(); got != "[debug] classified fbclid as hash\n" {
		t.Errorf("unexpected output %q", got)
	}
	if !l.Enabled() {
		t.Error("expected logger to be enabled")
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf).Named("watch").Named("tick")
	l.Printf("clipboard unchanged")

	if got := buf.String(); got != "[debug] watch: tick: clipboard unchanged\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf).Section("rewrite")
	if !strings.Contains(buf.String(), "─── rewrite ───") {
		t.Errorf("expected section marker, got %q", buf.String())
	}
}
