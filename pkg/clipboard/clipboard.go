// Package clipboard reads and writes the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard tool is available.
var ErrUnsupported = errors.New("no clipboard tool found (install xclip, xsel or wl-clipboard)")

// Clipboard is the text clipboard the watcher polls.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System is the platform clipboard (pbcopy/pbpaste on macOS, wl-clipboard,
// xclip or xsel on Linux, the Win32 API on Windows).
type System struct{}

// Read returns the current clipboard text.
func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read failed: %w", err)
	}
	return text, nil
}

// Write replaces the clipboard text.
func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// Memory is an in-process Clipboard for tests and headless use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	err    error
}

// NewMemory creates a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Read returns the stored text, or the error set by SetError.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	m.writes++
	return nil
}

// Set replaces the stored text without counting a write, as if another
// program had copied it.
func (m *Memory) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// SetError makes subsequent reads and writes fail with err (nil clears it).
func (m *Memory) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Writes returns how many times Write succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
