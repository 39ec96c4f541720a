// Package watch polls the clipboard and replaces tracking URLs in place.
// It never reads anything but the clipboard and never opens a connection.
package watch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jcadam/decoy/pkg/classify"
	"github.com/jcadam/decoy/pkg/clipboard"
	"github.com/jcadam/decoy/pkg/debug"
	"github.com/jcadam/decoy/pkg/rewrite"
)

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
	Tick(d time.Duration) <-chan time.Time
}

// SystemClock uses the real system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time                       { return time.Now() }
func (SystemClock) Tick(d time.Duration) <-chan time.Time { return time.Tick(d) }

// Event describes one clipboard rewrite.
type Event struct {
	Time       time.Time
	Input      string
	Output     string
	Categories []classify.Category
	Manual     bool
}

// Config holds all dependencies for the watcher.
type Config struct {
	Clock       Clock               // defaults to SystemClock
	Clipboard   clipboard.Clipboard // required
	Rewriter    *rewrite.Rewriter   // defaults to rewrite.New(nil, nil)
	Interval    time.Duration       // poll interval; defaults to 500ms
	DedupWindow time.Duration       // ignore texts handled this recently
	TextMode    bool                // rewrite URLs inside arbitrary text
	Disabled    bool                // start with polling paused
	Once        bool                // single check, then exit
	OnRewrite   func(Event)         // called after each successful write-back
	Logger      io.Writer           // error output (os.Stderr in prod)
	Debug       *debug.Logger
}

// Watcher polls a clipboard for URLs carrying tracking parameters.
type Watcher struct {
	cfg     Config
	enabled atomic.Bool

	mu        sync.Mutex // guards last and processed
	last      string
	processed map[string]time.Time
}

// New creates a watcher with the given config.
func New(cfg Config) *Watcher {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Rewriter == nil {
		cfg.Rewriter = rewrite.New(nil, cfg.Debug)
	}
	cfg.Debug = cfg.Debug.Named("watch")
	if cfg.Interval <= 0 {
		cfg.Interval = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = io.Discard
	}
	w := &Watcher{cfg: cfg, processed: make(map[string]time.Time)}
	w.enabled.Store(!cfg.Disabled)
	return w
}

// Enabled reports whether polling currently acts on clipboard changes.
func (w *Watcher) Enabled() bool { return w.enabled.Load() }

// SetEnabled pauses or resumes polling.
func (w *Watcher) SetEnabled(on bool) {
	w.enabled.Store(on)
	w.cfg.Debug.Printf("enabled=%v", on)
}

// Toggle flips the enabled state and returns the new value.
func (w *Watcher) Toggle() bool {
	for {
		old := w.enabled.Load()
		if w.enabled.CompareAndSwap(old, !old) {
			w.cfg.Debug.Printf("enabled=%v", !old)
			return !old
		}
	}
}

// Run blocks until ctx is cancelled, checking the clipboard every interval.
// If Config.Once, performs one check and returns.
func (w *Watcher) Run(ctx context.Context) error {
	w.tick()

	if w.cfg.Once {
		return nil
	}

	ch := w.cfg.Clock.Tick(w.cfg.Interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			w.tick()
		}
	}
}

// CheckNow processes the current clipboard immediately, ignoring the
// enabled flag and the dedup window. The boolean reports whether the
// clipboard was rewritten.
func (w *Watcher) CheckNow() (Event, bool, error) {
	text, err := w.cfg.Clipboard.Read()
	if err != nil {
		return Event{}, false, err
	}
	w.mu.Lock()
	w.last = text
	w.mu.Unlock()
	return w.process(text, true)
}

func (w *Watcher) tick() {
	if !w.enabled.Load() {
		return
	}

	text, err := w.cfg.Clipboard.Read()
	if err != nil {
		fmt.Fprintf(w.cfg.Logger, "error reading clipboard: %v\n", err)
		return
	}

	w.mu.Lock()
	if text == "" || text == w.last {
		w.mu.Unlock()
		return
	}
	w.last = text
	w.mu.Unlock()

	w.cfg.Debug.Printf("clipboard changed (%d bytes)", len(text))
	if _, _, err := w.process(text, false); err != nil {
		fmt.Fprintf(w.cfg.Logger, "error writing clipboard: %v\n", err)
	}
}

// process rewrites text and writes the result back to the clipboard.
func (w *Watcher) process(text string, manual bool) (Event, bool, error) {
	now := w.cfg.Clock.Now()

	if !manual && w.recentlyProcessed(text, now) {
		w.cfg.Debug.Printf("skipping text handled within %s", w.cfg.DedupWindow)
		return Event{}, false, nil
	}

	out, cats := w.rewrite(text)
	if out == text {
		return Event{}, false, nil
	}

	if err := w.cfg.Clipboard.Write(out); err != nil {
		return Event{}, false, err
	}

	w.mu.Lock()
	w.last = out
	w.processed[text] = now
	w.processed[out] = now
	w.mu.Unlock()

	ev := Event{Time: now, Input: text, Output: out, Categories: cats, Manual: manual}
	if w.cfg.OnRewrite != nil {
		w.cfg.OnRewrite(ev)
	}
	return ev, true, nil
}

// rewrite returns the rewritten text and the categories of replaced values.
// In bare mode only a single URL (surrounding whitespace allowed) is
// considered.
func (w *Watcher) rewrite(text string) (string, []classify.Category) {
	rw := w.cfg.Rewriter
	if w.cfg.TextMode {
		out, reports := rw.InspectText(text)
		var cats []classify.Category
		for _, r := range reports {
			cats = append(cats, r.Categories()...)
		}
		return out, cats
	}

	candidate := strings.TrimSpace(text)
	if !rewrite.HasTrackingParameters(candidate) {
		return text, nil
	}
	rep, _ := rw.Inspect(candidate)
	if !rep.Changed() {
		return text, nil
	}
	lead := text[:strings.Index(text, candidate)]
	trail := text[len(lead)+len(candidate):]
	return lead + rep.Output + trail, rep.Categories()
}

// recentlyProcessed reports whether text was handled within the dedup
// window, pruning expired entries as it goes.
func (w *Watcher) recentlyProcessed(text string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for k, at := range w.processed {
		if now.Sub(at) > w.cfg.DedupWindow {
			delete(w.processed, k)
		}
	}
	_, ok := w.processed[text]
	return ok
}
