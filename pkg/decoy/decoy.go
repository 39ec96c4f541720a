// Package decoy synthesizes replacement values for tracking parameters and
// recognizes values it has already produced.
//
// Phrase categories draw from fixed vocabularies. Hash-like identifiers are
// rebuilt from the word bank so they keep the look of an opaque token while
// carrying no information from the original.
package decoy

import (
	"math/rand/v2"
	"strings"
	"sync/atomic"

	"github.com/jcadam/decoy/pkg/classify"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// Options configures a Randomizer.
type Options struct {
	// AllowRepeats disables the soft guard against drawing the same phrase
	// twice in a row for a category.
	AllowRepeats bool
	// IntN returns a uniform integer in [0, n). Defaults to math/rand/v2.IntN.
	IntN func(n int) int
}

// Randomizer produces decoy values. The zero value is not usable; call New.
// A Randomizer is safe for concurrent use. Concurrent calls may race on the
// most-recent-draw slot, which at worst lets a phrase repeat.
type Randomizer struct {
	intn         func(int) int
	allowRepeats bool
	last         map[classify.Category]*atomic.Int64 // read-only after New
}

// New creates a Randomizer.
func New(opts Options) *Randomizer {
	r := &Randomizer{
		intn:         opts.IntN,
		allowRepeats: opts.AllowRepeats,
		last:         make(map[classify.Category]*atomic.Int64, len(phraseLists)),
	}
	if r.intn == nil {
		r.intn = rand.IntN
	}
	for c := range phraseLists {
		slot := new(atomic.Int64)
		slot.Store(-1)
		r.last[c] = slot
	}
	return r
}

var defaultRandomizer = New(Options{})

// For returns a decoy for a value of the given category using the shared
// process-wide Randomizer.
func For(c classify.Category, original string) string {
	return defaultRandomizer.For(c, original)
}

// For returns a decoy for a value of the given category. Phrase categories
// ignore original. Hash decoys mimic its shape and never equal it.
// None returns original unchanged.
func (r *Randomizer) For(c classify.Category, original string) string {
	switch c {
	case classify.None:
		return original
	case classify.Hash:
		for {
			if tok := r.hashToken(original); tok != original {
				return tok
			}
		}
	default:
		return r.phrase(c)
	}
}

func (r *Randomizer) phrase(c classify.Category) string {
	list, ok := phraseLists[c]
	if !ok {
		c = classify.Generic
		list = generics
	}
	idx := r.intn(len(list))
	if r.allowRepeats || len(list) < 2 {
		return list[idx]
	}
	slot := r.last[c]
	if int64(idx) == slot.Load() {
		idx = (idx + 1 + r.intn(len(list)-1)) % len(list)
	}
	slot.Store(int64(idx))
	return list[idx]
}

// hashToken builds a word-bank token shaped after original.
//
// Without separators: 2-4 bank phrases and an alphanumeric suffix, joined by
// '-'. With separators: split on the first '-' or '_', replace every segment
// but the last with a bank phrase (at least two), and regenerate the last as
// an alphanumeric run of similar length.
func (r *Randomizer) hashToken(original string) string {
	upper := isUpper(original)
	idx := strings.IndexAny(original, "-_")
	if idx < 0 {
		n := max(len(original), 12) / 16
		words := r.pickWords(clamp(n, 2, 4))
		suffixLen := clamp((max(len(original), 8)+6)/7, 4, 10)
		return strings.Join(append(words, r.alnum(suffixLen, upper)), "-")
	}

	sep := original[idx : idx+1]
	segments := strings.Split(original, sep)
	words := r.pickWords(max(len(segments)-1, 2))
	last := segments[len(segments)-1]
	return strings.Join(append(words, r.alnum(clamp(len(last), 6, 32), upper)), sep)
}

// pickWords draws n word-bank phrases, distinct while the bank allows it.
func (r *Randomizer) pickWords(n int) []string {
	words := make([]string, 0, n)
	used := make(map[int]bool, n)
	for len(words) < n {
		i := r.intn(len(wordBank))
		for used[i] && len(used) < len(wordBank) {
			i = (i + 1) % len(wordBank)
		}
		used[i] = true
		words = append(words, wordBank[i])
	}
	return words
}

func (r *Randomizer) alnum(n int, upper bool) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphanumeric[r.intn(len(alphanumeric))])
	}
	if upper {
		return strings.ToUpper(b.String())
	}
	return b.String()
}

// isUpper reports whether s has letters and all of them are upper case.
// Mixed and lower-case input both map to lower-case output.
func isUpper(s string) bool {
	letters := false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
			return false
		case c >= 'A' && c <= 'Z':
			letters = true
		}
	}
	return letters
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
