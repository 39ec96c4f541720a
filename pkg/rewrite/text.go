package rewrite

import (
	"regexp"
	"strings"
)

// embeddedURL matches http(s) URLs inside free text, stopping at whitespace,
// quotes, and angle brackets.
var embeddedURL = regexp.MustCompile(`(?i)https?://[^\s<>"'` + "`" + `]+`)

// trailingPunct is stripped from the end of an embedded URL match: sentence
// punctuation and closing brackets are almost never part of the link.
const trailingPunct = ".,;:!?)]}"

// RewriteText rewrites every http(s) URL embedded in text, leaving the
// surrounding text untouched. It returns text unchanged when no URL carries
// tracking parameters.
func RewriteText(text string) string {
	return defaultRewriter.RewriteText(text)
}

// RewriteText rewrites every http(s) URL embedded in text.
func (w *Rewriter) RewriteText(text string) string {
	out, _ := w.InspectText(text)
	return out
}

// TextReport is a Report for a URL found at text[Start:End].
type TextReport struct {
	Report
	Start, End int
}

// InspectText rewrites every embedded URL and reports the ones that
// changed. URLs without tracking parameters are omitted from the reports.
func (w *Rewriter) InspectText(text string) (string, []TextReport) {
	var reports []TextReport
	for _, loc := range embeddedURL.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		for end > start && strings.IndexByte(trailingPunct, text[end-1]) >= 0 {
			end--
		}
		rep, ok := w.Inspect(text[start:end])
		if !ok || !rep.Changed() {
			continue
		}
		reports = append(reports, TextReport{Report: rep, Start: start, End: end})
	}
	if len(reports) == 0 {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for _, r := range reports {
		b.WriteString(text[last:r.Start])
		b.WriteString(r.Output)
		last = r.End
	}
	b.WriteString(text[last:])
	return b.String(), reports
}
