package render

import (
	"fmt"
	"strings"

	"github.com/jcadam/decoy/pkg/classify"
	"github.com/jcadam/decoy/pkg/decoy"
	"github.com/jcadam/decoy/pkg/rewrite"
)

// RulesMarkdown documents the classification rules in precedence order,
// followed by the decoy phrases for each category.
func RulesMarkdown(rs classify.RuleSet) string {
	var b strings.Builder
	b.WriteString("# Tracking parameter rules\n\n")
	b.WriteString("Keys are lower-cased, then checked against each tier in order. ")
	b.WriteString("The first tier that matches decides the category.\n\n")

	b.WriteString("## 1. Exact keys\n\n")
	b.WriteString("| Category | Keys |\n|---|---|\n")
	for _, c := range classify.Categories {
		keys := rs.Exact[c]
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", c, codeList(keys))
	}

	b.WriteString("\n## 2. Prefix\n\n")
	fmt.Fprintf(&b, "Any other key starting with `%s` is **generic**.\n", rs.UTMPrefix)

	b.WriteString("\n## 3. Click and session identifiers\n\n")
	fmt.Fprintf(&b, "Exact: %s\n\n", codeList(rs.HashKeys))
	fmt.Fprintf(&b, "Prefixes: %s\n", codeList(rs.HashPrefixes))

	b.WriteString("\n## 4. Keyword patterns\n\n")
	b.WriteString("| # | Category | Pattern |\n|---|---|---|\n")
	for i, k := range rs.Keywords {
		fmt.Fprintf(&b, "| %d | %s | `%s` |\n", i+1, k.Category, escapePipes(k.Pattern))
	}

	b.WriteString("\n## 5. Generic hints\n\n")
	for _, h := range rs.GenericHints {
		fmt.Fprintf(&b, "- `%s`\n", escapePipes(h))
	}

	b.WriteString("\n## Decoys\n\n")
	b.WriteString("| Category | Phrases |\n|---|---|\n")
	for _, c := range classify.Categories {
		if c == classify.Hash {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", c, codeList(decoy.Phrases(c)))
	}
	b.WriteString("\nHash values become two to four bank phrases plus a random ")
	b.WriteString("alphanumeric suffix, keeping the original's separator and letter case.\n")
	return b.String()
}

// ReportMarkdown describes what Inspect found in one URL.
func ReportMarkdown(rep rewrite.Report) string {
	var b strings.Builder
	if len(rep.Params) == 0 {
		b.WriteString("No tracking parameters.\n")
		return b.String()
	}

	b.WriteString("| Key | Category | Rule | Value | Decoy |\n|---|---|---|---|---|\n")
	for _, p := range rep.Params {
		replacement := p.Replacement
		switch {
		case p.Decoy:
			replacement = "*already a decoy*"
		case !p.Changed:
			replacement = "*unchanged*"
		default:
			replacement = "`" + escapePipes(replacement) + "`"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | `%s` | %s |\n",
			escapePipes(p.Key), p.Category, p.Rule, escapePipes(p.Original), replacement)
	}
	if rep.Changed() {
		fmt.Fprintf(&b, "\n%s\n", rep.Output)
	}
	return b.String()
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + escapePipes(s) + "`"
	}
	return strings.Join(quoted, ", ")
}

// escapePipes keeps table cells intact when a pattern contains alternation.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
