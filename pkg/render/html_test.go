package render

import (
	"strings"
	"testing"

	"github.com/jcadam/decoy/pkg/classify"
)

func TestExportHTML(t *testing.T) {
	out, err := ExportHTML("# Rules\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", "Decoy <rules>")
	if err != nil {
		t.Fatalf("ExportHTML: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("expected doctype")
	}
	if !strings.Contains(out, "<title>Decoy &lt;rules&gt;</title>") {
		t.Error("expected escaped title")
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<td>1</td>") {
		t.Errorf("expected table rendering, got:\n%s", out)
	}
	if !strings.Contains(out, "width: 100%;") {
		t.Error("expected literal percent in stylesheet")
	}
}

func TestExportRulesHTML(t *testing.T) {
	out, err := ExportHTML(RulesMarkdown(classify.Rules()), "rules")
	if err != nil {
		t.Fatalf("ExportHTML: %v", err)
	}
	if !strings.Contains(out, "<code>fbclid</code>") {
		t.Error("expected hash keys in HTML")
	}
}
