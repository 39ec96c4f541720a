package decoy

import (
	"regexp"
	"sort"
	"strings"
)

var (
	hyphenDecoy     *regexp.Regexp
	underscoreDecoy *regexp.Regexp
)

// compileDecoyPatterns builds the structural matchers for hash decoys:
// two or more bank phrases joined by one separator, optionally followed by
// an alphanumeric suffix segment.
func compileDecoyPatterns() {
	quoted := make([]string, len(wordBank))
	for i, w := range wordBank {
		quoted[i] = regexp.QuoteMeta(w)
	}
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	bank := "(?:" + strings.Join(quoted, "|") + ")"

	hyphenDecoy = regexp.MustCompile(`^` + bank + `(?:-` + bank + `)+(?:-[A-Za-z0-9]+)?$`)
	underscoreDecoy = regexp.MustCompile(`^` + bank + `(?:_` + bank + `)+(?:_[A-Za-z0-9]+)?$`)
}

// IsAlreadyRandomized reports whether value is a decoy: either one of the
// fixed category phrases or a word-bank token as produced for hash keys.
func IsAlreadyRandomized(value string) bool {
	if value == "" {
		return false
	}
	if phraseSet[value] {
		return true
	}
	return hyphenDecoy.MatchString(value) || underscoreDecoy.MatchString(value)
}
