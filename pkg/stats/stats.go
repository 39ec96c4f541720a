// Package stats keeps usage counters for rewritten URLs: today, all-time,
// and per tracking category. Counters live in a small JSON file next to the
// config and never leave the local machine.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jcadam/decoy/pkg/classify"
)

// Counters is the persisted usage state.
type Counters struct {
	Day         string         `json:"day"` // YYYY-MM-DD that Today refers to
	Today       int            `json:"today"`
	Total       int            `json:"total"`
	ByCategory  map[string]int `json:"by_category"`
	LastRewrite time.Time      `json:"last_rewrite,omitempty"`
}

func newCounters() *Counters {
	return &Counters{ByCategory: make(map[string]int)}
}

func (c *Counters) clone() *Counters {
	cp := *c
	cp.ByCategory = make(map[string]int, len(c.ByCategory))
	for k, v := range c.ByCategory {
		cp.ByCategory[k] = v
	}
	return &cp
}

// rollover resets Today when the calendar day has changed.
func (c *Counters) rollover(day string) {
	if c.Day != day {
		c.Day = day
		c.Today = 0
	}
}

// Store abstracts counter persistence.
type Store interface {
	Load() (*Counters, error)
	Save(c *Counters) error
}

// Recorder applies rewrite events to a Store. Load→modify→save sequences
// are serialized so concurrent recorders in one process never clobber
// each other.
type Recorder struct {
	store Store
	now   func() time.Time
	mu    sync.Mutex
}

// NewRecorder creates a Recorder. A nil now uses time.Now.
func NewRecorder(store Store, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{store: store, now: now}
}

// Record counts one rewritten URL whose replaced parameters had the given
// categories, and returns the updated counters.
func (r *Recorder) Record(cats []classify.Category) (*Counters, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	now := r.now()
	c.rollover(now.Format("2006-01-02"))
	c.Today++
	c.Total++
	for _, cat := range cats {
		c.ByCategory[string(cat)]++
	}
	c.LastRewrite = now

	if err := r.store.Save(c); err != nil {
		return nil, err
	}
	return c.clone(), nil
}

// Snapshot returns the current counters with Today adjusted for the
// current day. Nothing is written.
func (r *Recorder) Snapshot() (*Counters, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	c.rollover(r.now().Format("2006-01-02"))
	return c, nil
}

// Reset clears every counter.
func (r *Recorder) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save(newCounters())
}

// Breakdown returns per-category counts in classify.Categories order,
// including zero counts.
func (c *Counters) Breakdown() ([]string, []float64) {
	labels := make([]string, 0, len(classify.Categories))
	values := make([]float64, 0, len(classify.Categories))
	for _, cat := range classify.Categories {
		labels = append(labels, string(cat))
		values = append(values, float64(c.ByCategory[string(cat)]))
	}
	return labels, values
}

// --- FileStore ---

// FileStore persists counters to a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the counters file. Returns empty counters if it doesn't exist.
func (f *FileStore) Load() (*Counters, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newCounters(), nil
		}
		return nil, fmt.Errorf("reading stats file: %w", err)
	}

	var c Counters
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing stats file: %w", err)
	}
	if c.ByCategory == nil {
		c.ByCategory = make(map[string]int)
	}
	return &c, nil
}

// Save writes the counters file atomically via temp+rename.
func (f *FileStore) Save(c *Counters) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating stats directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "stats-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming stats file: %w", err)
	}
	return nil
}

// --- MemoryStore ---

// MemoryStore is an in-memory Store for tests and --no-stats runs.
type MemoryStore struct {
	mu sync.Mutex
	c  *Counters
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: newCounters()}
}

// Load returns a copy of the stored counters.
func (m *MemoryStore) Load() (*Counters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c.clone(), nil
}

// Save replaces the stored counters with a copy.
func (m *MemoryStore) Save(c *Counters) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c = c.clone()
	return nil
}
