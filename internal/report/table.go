// internal/report/table.go
// Package report turns computed metric rows into tables and renders them.
package report

import (
	"math"
	"strconv"

	"github.com/mwiater/dief/internal/metrics"
	"github.com/mwiater/dief/internal/trace"
)

// Table is a titled grid of values. Cells hold string, int or float64 values.
type Table struct {
	Title   string   `json:"title" yaml:"title"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

// Column returns the index of the named column, or -1.
func (t Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// FromResults builds a table of dief@t or dief@k values; metric names the value column.
func FromResults(title, metric string, results []metrics.Result) Table {
	t := Table{Title: title, Columns: []string{"test", "approach", metric}}
	for _, r := range results {
		t.Rows = append(t.Rows, []any{r.Test, r.Approach, r.Value})
	}
	return t
}

// FromComposite builds the dief@t versus conventional metrics table.
func FromComposite(title string, rows []metrics.CompositeResult) Table {
	t := Table{
		Title:   title,
		Columns: []string{"test", "approach", "tfft", "totaltime", "comp", "throughput", "invtfft", "invtotaltime", "dieft"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Test, r.Approach, r.TFFT, r.TotalTime, r.Comp, r.Throughput, r.InvTFFT, r.InvTotalTime, r.DiefT})
	}
	return t
}

// FromContinuous builds the dief@k continuous efficiency table.
func FromContinuous(title string, rows []metrics.ContinuousResult) Table {
	t := Table{Title: title, Columns: []string{"test", "approach", "diefk25", "diefk50", "diefk75", "diefk100"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Test, r.Approach, r.DiefK25, r.DiefK50, r.DiefK75, r.DiefK100})
	}
	return t
}

// FromMetrics builds a table of conventional metrics.
func FromMetrics(title string, rows []trace.MetricRecord) Table {
	t := Table{Title: title, Columns: trace.MetricColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Test, r.Approach, r.TFFT, r.TotalTime, r.Comp})
	}
	return t
}

// Strings returns the rows formatted for display, floats rounded to four places.
func (t Table) Strings() [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = displayCell(v)
		}
		rows[i] = cells
	}
	return rows
}

// Highlight names the row with the highest value of a column within one group.
type Highlight struct {
	Group string
	Label string
	Value float64
}

// Best returns, for every distinct value of groupCol in order of first
// appearance, the labelCol of the row with the highest valueCol. NaN values
// never win.
func Best(t Table, groupCol, labelCol, valueCol string) []Highlight {
	gi, li, vi := t.Column(groupCol), t.Column(labelCol), t.Column(valueCol)
	if gi < 0 || li < 0 || vi < 0 {
		return nil
	}

	var order []string
	best := make(map[string]Highlight)
	for _, row := range t.Rows {
		v, ok := number(row[vi])
		if !ok || math.IsNaN(v) {
			continue
		}
		group := formatCell(row[gi])
		current, seen := best[group]
		if !seen {
			order = append(order, group)
		}
		if !seen || v > current.Value {
			best[group] = Highlight{Group: group, Label: formatCell(row[li]), Value: v}
		}
	}

	out := make([]Highlight, 0, len(order))
	for _, g := range order {
		out = append(out, best[g])
	}
	return out
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// formatCell renders a cell for text and CSV output.
func formatCell(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

// displayCell renders a cell for the styled table, rounding floats.
func displayCell(v any) string {
	if f, ok := v.(float64); ok && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', 4, 64)
	}
	return formatCell(v)
}
