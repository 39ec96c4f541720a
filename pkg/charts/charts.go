// Package charts draws the per-category rewrite counts as a PNG bar or pie
// chart, or as a text table for terminals without inline image support.
package charts

import (
	"fmt"
	"strings"

	"github.com/go-analyze/charts"
	"github.com/jcadam/decoy/pkg/stats"
)

// Chart is a titled series of labelled values.
type Chart struct {
	Type   string // bar or pie
	Title  string
	Labels []string
	Values []float64
}

// FromCounters builds a bar chart of rewritten parameters per category.
func FromCounters(c *stats.Counters) Chart {
	labels, values := c.Breakdown()
	return Chart{
		Type:   "bar",
		Title:  fmt.Sprintf("Parameters randomized (%d URLs)", c.Total),
		Labels: labels,
		Values: values,
	}
}

// Empty reports whether every value is zero.
func (c Chart) Empty() bool {
	for _, v := range c.Values {
		if v != 0 {
			return false
		}
	}
	return true
}

// RenderPNG renders the chart as a PNG image. Returns raw PNG bytes.
func RenderPNG(c Chart, width, height int) ([]byte, error) {
	switch c.Type {
	case "", "bar":
		return renderBar(c, width, height)
	case "pie":
		return renderPie(c, width, height)
	default:
		return nil, fmt.Errorf("unsupported chart type: %q", c.Type)
	}
}

// RenderTextTable formats the chart as a box-drawn table with a
// proportional bar per row.
func RenderTextTable(c Chart) string {
	count := min(len(c.Labels), len(c.Values))
	if count == 0 {
		return ""
	}

	maxLabel, maxValue, peak := 1, 1, 0.0
	valueStrs := make([]string, count)
	for i := 0; i < count; i++ {
		maxLabel = max(maxLabel, len(c.Labels[i]))
		valueStrs[i] = formatValue(c.Values[i])
		maxValue = max(maxValue, len(valueStrs[i]))
		peak = max(peak, c.Values[i])
	}
	const barWidth = 20

	var b strings.Builder
	if c.Title != "" {
		b.WriteString("  " + c.Title + "\n")
	}

	fmt.Fprintf(&b, "  ┌%s┬%s┬%s┐\n",
		strings.Repeat("─", maxLabel+2),
		strings.Repeat("─", maxValue+2),
		strings.Repeat("─", barWidth+2))

	for i := 0; i < count; i++ {
		n := 0
		if peak > 0 {
			n = int(c.Values[i] / peak * barWidth)
		}
		fmt.Fprintf(&b, "  │ %-*s │ %*s │ %-*s │\n",
			maxLabel, c.Labels[i],
			maxValue, valueStrs[i],
			barWidth, strings.Repeat("█", n))
	}

	fmt.Fprintf(&b, "  └%s┴%s┴%s┘",
		strings.Repeat("─", maxLabel+2),
		strings.Repeat("─", maxValue+2),
		strings.Repeat("─", barWidth+2))

	return b.String()
}

// formatValue formats a float64 for display, omitting decimal places for integers.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func renderBar(c Chart, width, height int) ([]byte, error) {
	values := make([]float64, len(c.Values))
	copy(values, c.Values)

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(c.Title),
		charts.XAxisLabelsOptionFunc(c.Labels),
		charts.DimensionsOptionFunc(width, height),
		charts.PNGOutputOptionFunc(),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering bar chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding bar chart PNG: %w", err)
	}
	return buf, nil
}

// renderPie drops zero slices, which the pie renderer cannot place.
func renderPie(c Chart, width, height int) ([]byte, error) {
	var labels []string
	var values []float64
	for i, v := range c.Values {
		if v > 0 && i < len(c.Labels) {
			labels = append(labels, c.Labels[i])
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("rendering pie chart: no non-zero values")
	}

	p, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc(c.Title),
		charts.LegendLabelsOptionFunc(labels),
		charts.DimensionsOptionFunc(width, height),
		charts.PNGOutputOptionFunc(),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering pie chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding pie chart PNG: %w", err)
	}
	return buf, nil
}
