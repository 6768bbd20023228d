// Package render draws dashboard tables, bar charts, and banners on a
// terminal. It is a pure display layer: no sorting, filtering, or pagination
// happens here.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/amalbasheer/Game-analytics/internal/dashboard"
)

const barWidth = 50

// Table writes all rows and columns as an ASCII table, in the order given.
func Table(w io.Writer, t dashboard.Table) {
	if len(t.Columns) == 0 {
		return
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Columns)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		tw.Append(cells)
	}
	tw.Render()
}

// BarChart draws a horizontal bar chart keyed by categoryCol with bar lengths
// taken from valueCol. An empty table draws nothing.
func BarChart(w io.Writer, t dashboard.Table, categoryCol, valueCol string) {
	if t.Empty() {
		return
	}
	labels := t.Column(categoryCol)
	values := t.Column(valueCol)
	if labels == nil || values == nil {
		return
	}

	maxVal := 0.0
	nums := make([]float64, len(values))
	for i, v := range values {
		f, ok := asFloat(v)
		if !ok {
			continue
		}
		nums[i] = f
		if f > maxVal {
			maxVal = f
		}
	}

	labelWidth := 0
	for _, l := range labels {
		if n := len(formatCell(l)); n > labelWidth {
			labelWidth = n
		}
	}

	bar := color.New(color.FgCyan)
	for i, l := range labels {
		n := 0
		if maxVal > 0 {
			n = int(nums[i] / maxVal * barWidth)
		}
		if nums[i] > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(w, "%-*s ", labelWidth, formatCell(l))
		bar.Fprint(w, strings.Repeat("█", n))
		fmt.Fprintf(w, " %s\n", formatCell(values[i]))
	}
}

// Banners writes the collected messages, one colored line per banner.
func Banners(w io.Writer, banners []dashboard.Banner) {
	for _, b := range banners {
		switch b.Level {
		case dashboard.BannerError:
			color.New(color.FgRed).Fprintf(w, "ERROR: %s\n", b.Message)
		case dashboard.BannerWarning:
			color.New(color.FgYellow).Fprintf(w, "WARNING: %s\n", b.Message)
		default:
			color.New(color.FgCyan).Fprintf(w, "%s\n", b.Message)
		}
	}
}

// Section writes a section heading.
func Section(w io.Writer, title string) {
	color.New(color.FgGreen, color.Bold).Fprintf(w, "\n=== %s ===\n", title)
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
