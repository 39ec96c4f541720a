package charts

import (
	"strings"
	"testing"
	"time"

	"github.com/jcadam/decoy/pkg/stats"
)

func sampleCounters() *stats.Counters {
	return &stats.Counters{
		Day:   "2025-03-10",
		Today: 3,
		Total: 12,
		ByCategory: map[string]int{
			"source": 9,
			"hash":   4,
			"term":   1,
		},
		LastRewrite: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestFromCounters(t *testing.T) {
	c := FromCounters(sampleCounters())
	if c.Type != "bar" {
		t.Errorf("expected bar chart, got %q", c.Type)
	}
	if !strings.Contains(c.Title, "12 URLs") {
		t.Errorf("expected total in title, got %q", c.Title)
	}
	if len(c.Labels) != len(c.Values) || len(c.Labels) != 7 {
		t.Fatalf("expected 7 labels and values, got %d/%d", len(c.Labels), len(c.Values))
	}
	if c.Labels[0] != "source" || c.Values[0] != 9 {
		t.Errorf("expected source=9 first, got %s=%v", c.Labels[0], c.Values[0])
	}
	if c.Empty() {
		t.Error("chart with counts should not be empty")
	}
}

func TestEmpty(t *testing.T) {
	if !(Chart{Values: []float64{0, 0}}).Empty() {
		t.Error("all-zero chart should be empty")
	}
	if !(Chart{}).Empty() {
		t.Error("chart without values should be empty")
	}
}

func TestRenderPNGBar(t *testing.T) {
	png, err := RenderPNG(FromCounters(sampleCounters()), 800, 400)
	if err != nil {
		t.Fatalf("RenderPNG bar: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("expected valid PNG header")
	}
}

func TestRenderPNGPie(t *testing.T) {
	c := FromCounters(sampleCounters())
	c.Type = "pie"
	png, err := RenderPNG(c, 600, 400)
	if err != nil {
		t.Fatalf("RenderPNG pie: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("expected valid PNG header")
	}
}

func TestRenderPNGPieAllZero(t *testing.T) {
	c := Chart{Type: "pie", Labels: []string{"a"}, Values: []float64{0}}
	if _, err := RenderPNG(c, 600, 400); err == nil {
		t.Error("expected error for all-zero pie")
	}
}

func TestRenderPNGUnsupported(t *testing.T) {
	if _, err := RenderPNG(Chart{Type: "radar"}, 100, 100); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestRenderTextTable(t *testing.T) {
	c := Chart{
		Title:  "Rewrites",
		Labels: []string{"source", "hash"},
		Values: []float64{10, 5},
	}
	out := RenderTextTable(c)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if strings.TrimSpace(lines[0]) != "Rewrites" {
		t.Errorf("expected title line, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "source") || !strings.Contains(lines[2], strings.Repeat("█", 20)) {
		t.Errorf("expected full bar for peak row, got %q", lines[2])
	}
	if !strings.Contains(lines[3], strings.Repeat("█", 10)) || strings.Contains(lines[3], strings.Repeat("█", 11)) {
		t.Errorf("expected half bar for second row, got %q", lines[3])
	}
}

func TestRenderTextTableEmpty(t *testing.T) {
	if out := RenderTextTable(Chart{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderTextTableZeroPeak(t *testing.T) {
	out := RenderTextTable(Chart{Labels: []string{"a"}, Values: []float64{0}})
	if strings.Contains(out, "█") {
		t.Errorf("zero values should draw no bar: %q", out)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{0, "0"},
		{2.5, "2.5"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
