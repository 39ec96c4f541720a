// Package rewrite replaces tracking-parameter values in URLs with decoys.
//
// Every entry point is total: input that is not an absolute http(s) URL, or
// that carries no tracking parameters, comes back byte-for-byte unchanged.
package rewrite

import (
	"net/url"
	"strings"

	"github.com/jcadam/decoy/pkg/classify"
	"github.com/jcadam/decoy/pkg/debug"
	"github.com/jcadam/decoy/pkg/decoy"
)

// Param is one finding from Inspect.
type Param struct {
	Key         string // decoded key
	Category    classify.Category
	Rule        classify.Level
	Original    string // decoded value
	Replacement string // decoded value after rewriting; equals Original when unchanged
	Changed     bool
	Decoy       bool // value was already a decoy
}

// Report is the outcome of rewriting one URL.
type Report struct {
	Input  string
	Output string
	Params []Param // tracking parameters only, in query order
}

// Changed reports whether any value was replaced.
func (r Report) Changed() bool { return r.Input != r.Output }

// Categories returns the category of every replaced parameter.
func (r Report) Categories() []classify.Category {
	var cats []classify.Category
	for _, p := range r.Params {
		if p.Changed {
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Rewriter rewrites URLs using its Randomizer.
type Rewriter struct {
	rnd *decoy.Randomizer
	log *debug.Logger
}

// New creates a Rewriter. A nil randomizer uses a fresh default one; a nil
// logger disables debug output.
func New(rnd *decoy.Randomizer, log *debug.Logger) *Rewriter {
	if rnd == nil {
		rnd = decoy.New(decoy.Options{})
	}
	return &Rewriter{rnd: rnd, log: log.Named("rewrite")}
}

var defaultRewriter = New(nil, nil)

// Rewrite replaces tracking-parameter values in raw with decoys.
func Rewrite(raw string) string {
	return defaultRewriter.Rewrite(raw)
}

// HasTrackingParameters reports whether raw is an http(s) URL with at least
// one query key that classifies as tracking.
func HasTrackingParameters(raw string) bool {
	parts, ok := split(raw)
	if !ok {
		return false
	}
	for _, p := range parts.pairs {
		if classify.Classify(p.key) != classify.None {
			return true
		}
	}
	return false
}

// IsAlreadyRandomized reports whether value is a decoy this package could
// have produced.
func IsAlreadyRandomized(value string) bool {
	return decoy.IsAlreadyRandomized(value)
}

// Rewrite replaces tracking-parameter values in raw with decoys.
func (w *Rewriter) Rewrite(raw string) string {
	rep, _ := w.Inspect(raw)
	return rep.Output
}

// Inspect rewrites raw and reports every tracking parameter it saw.
// The boolean is false when raw is not an absolute http(s) URL.
func (w *Rewriter) Inspect(raw string) (Report, bool) {
	rep := Report{Input: raw, Output: raw}
	parts, ok := split(raw)
	if !ok {
		return rep, false
	}

	changed := false
	for i := range parts.pairs {
		p := &parts.pairs[i]
		m := classify.Explain(p.key)
		if m.Category == classify.None {
			continue
		}
		param := Param{
			Key:         p.key,
			Category:    m.Category,
			Rule:        m.Level,
			Original:    p.value,
			Replacement: p.value,
		}
		if decoy.IsAlreadyRandomized(p.value) {
			param.Decoy = true
			w.log.Printf("%s=%q already a decoy (%s)", p.key, p.value, m.Category)
		} else {
			param.Replacement = w.rnd.For(m.Category, p.value)
			param.Changed = true
			p.raw = p.rawKey + "=" + url.QueryEscape(param.Replacement)
			changed = true
			w.log.Printf("%s (%s via %s) %q → %q", p.key, m.Category, m.Level, p.value, param.Replacement)
		}
		rep.Params = append(rep.Params, param)
	}

	if changed {
		rep.Output = parts.join()
	}
	return rep, true
}

// pair is one '&'-separated query segment.
type pair struct {
	raw    string // segment text as it will be written back
	rawKey string
	key    string
	value  string
}

// parts is a URL split around its query. Everything outside the query is
// kept verbatim.
type parts struct {
	prefix   string // up to and including '?'
	pairs    []pair
	fragment string // including '#', or empty
}

func (p parts) join() string {
	var b strings.Builder
	b.WriteString(p.prefix)
	for i, pr := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(pr.raw)
	}
	b.WriteString(p.fragment)
	return b.String()
}

// split validates raw as an absolute http(s) URL and splits its query into
// pairs, preserving order, duplicates and empty segments.
func split(raw string) (parts, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return parts{}, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return parts{}, false
	}
	if u.Host == "" {
		return parts{}, false
	}

	rest, fragment := raw, ""
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		rest, fragment = raw[:i], raw[i:]
	}
	i := strings.IndexByte(rest, '?')
	if i < 0 {
		return parts{prefix: rest, fragment: fragment}, true
	}

	out := parts{prefix: rest[:i+1], fragment: fragment}
	query := rest[i+1:]
	if query == "" {
		return out, true
	}
	for _, seg := range strings.Split(query, "&") {
		rawKey, rawValue, _ := strings.Cut(seg, "=")
		out.pairs = append(out.pairs, pair{
			raw:    seg,
			rawKey: rawKey,
			key:    unescape(rawKey),
			value:  unescape(rawValue),
		})
	}
	return out, true
}

// unescape decodes form-encoded text, falling back to the raw text when it
// holds malformed escapes.
func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return v
}
