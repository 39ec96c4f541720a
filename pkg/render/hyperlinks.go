package render

import (
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

// urlPattern matches HTTP(S) URLs, stopping before whitespace, ANSI escapes,
// closing parens/brackets/angles, or trailing punctuation.
var urlPattern = regexp.MustCompile(`https?://[^\s\x1b)\]>]+`)

// Hyperlink wraps url in an OSC 8 escape sequence so it is clickable in
// supporting terminals. With enabled=false it returns url as is.
func Hyperlink(url string, enabled bool) string {
	if !enabled || url == "" {
		return url
	}
	return ansi.SetHyperlink(url) + url + ansi.ResetHyperlink()
}

// LinkURLs wraps every URL in rendered output with an OSC 8 hyperlink.
func LinkURLs(rendered string, enabled bool) string {
	if !enabled {
		return rendered
	}
	return urlPattern.ReplaceAllStringFunc(rendered, func(url string) string {
		return Hyperlink(url, true)
	})
}
