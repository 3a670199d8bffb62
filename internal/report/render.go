// internal/report/render.go
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// Output formats understood by Renderer.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatCSV, FormatJSON, FormatYAML}

// Renderer writes tables in one output format. JSON and YAML documents carry a
// run id and generation time.
type Renderer struct {
	Format string
	RunID  string
	Now    func() time.Time
}

// NewRenderer returns a Renderer for format with a fresh run id.
func NewRenderer(format string) *Renderer {
	return &Renderer{Format: format, RunID: uuid.NewString(), Now: time.Now}
}

// document is the JSON/YAML envelope around rendered tables.
type document struct {
	RunID       string  `json:"runId" yaml:"runId"`
	GeneratedAt string  `json:"generatedAt" yaml:"generatedAt"`
	Tables      []Table `json:"tables" yaml:"tables"`
}

// Render writes tables to w.
func (r *Renderer) Render(w io.Writer, tables ...Table) error {
	switch strings.ToLower(strings.TrimSpace(r.Format)) {
	case "", FormatTable:
		return writeText(w, tables)
	case FormatCSV:
		return writeCSV(w, tables)
	case FormatJSON:
		return writeJSON(w, r.document(tables, true))
	case FormatYAML:
		return writeYAML(w, r.document(tables, false))
	default:
		return fmt.Errorf("unsupported output format %q (expected one of %s)", r.Format, strings.Join(Formats, ", "))
	}
}

func (r *Renderer) document(tables []Table, finiteOnly bool) document {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	doc := document{
		RunID:       r.RunID,
		GeneratedAt: now().UTC().Format(time.RFC3339),
		Tables:      make([]Table, 0, len(tables)),
	}
	for _, t := range tables {
		if finiteOnly {
			t = withoutNonFinite(t)
		}
		doc.Tables = append(doc.Tables, t)
	}
	return doc
}

// withoutNonFinite replaces Inf and NaN with nil, which JSON encodes as null.
func withoutNonFinite(t Table) Table {
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]any, len(row))
		for j, v := range row {
			if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
				out[j] = nil
				continue
			}
			out[j] = v
		}
		rows[i] = out
	}
	t.Rows = rows
	return t
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// StyledTable renders one table with lipgloss borders.
func StyledTable(t Table) string {
	numeric := make([]bool, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			if _, ok := number(v); ok && i < len(numeric) {
				numeric[i] = true
			}
		}
	}
	rows := t.Strings()

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(t.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col < len(numeric) && numeric[col] {
				return numberStyle
			}
			return cellStyle
		}).
		String()
}

func writeText(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if t.Title != "" {
			if _, err := fmt.Fprintln(w, titleStyle.Render(t.Title)); err != nil {
				return err
			}
		}
		if len(t.Rows) == 0 {
			if _, err := fmt.Fprintln(w, "(no rows)"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, StyledTable(t)); err != nil {
			return err
		}
	}
	return nil
}

// writeCSV writes each table as a header plus rows, separating tables with a blank line.
func writeCSV(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		for _, row := range t.Rows {
			record := make([]string, len(row))
			for j, v := range row {
				record[j] = formatCell(v)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode report JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode report YAML: %w", err)
	}
	return enc.Close()
}
