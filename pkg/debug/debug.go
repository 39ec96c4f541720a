// Package debug provides troubleshooting output for decoy. All methods are
// nil-safe: a nil *Logger is a no-op, so callers never need to check whether
// debugging is on.
package debug

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes "[debug]" lines to a writer. Loggers derived with Named
// share the parent's writer and lock.
type Logger struct {
	w      io.Writer
	mu     *sync.Mutex
	prefix string
}

// NewLogger creates a Logger that writes to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w, mu: &sync.Mutex{}, prefix: "[debug] "}
}

// Named returns a Logger whose lines are tagged with component.
// Returns nil on a nil receiver.
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{w: l.w, mu: l.mu, prefix: l.prefix + component + ": "}
}

// Enabled reports whether output is written at all.
func (l *Logger) Enabled() bool { return l != nil }

// Printf writes a formatted debug line. No-op on nil receiver.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, l.prefix+format+"\n", args...)
}

// Section writes a visual separator. No-op on nil receiver.
func (l *Logger) Section(label string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s─── %s ───\n", l.prefix, label)
}
