// internal/trace/csv.go
package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a trace file, choosing the decoder from the file extension.
func Load(path string) ([]Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads answer traces from a delimited file with a header row.
func LoadCSV(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open trace file %s: %w", path, err)
	}
	defer file.Close()

	records, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read trace file %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV parses answer traces. Columns are located by header name and rows keep
// their order in the input.
func ReadCSV(r io.Reader) ([]Record, error) {
	var records []Record
	err := readTable(r, TraceColumns, func(line int, fields []string) error {
		answer, err := parseCount(line, "answer", fields[2])
		if err != nil {
			return err
		}
		t, err := parseDuration(line, "time", fields[3])
		if err != nil {
			return err
		}
		records = append(records, Record{
			Test:     fields[0],
			Approach: fields[1],
			Answer:   answer,
			Time:     t,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// WriteCSV writes records in the given order using the trace file layout.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TraceColumns); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Test,
			rec.Approach,
			strconv.Itoa(rec.Answer),
			strconv.FormatFloat(rec.Time, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadMetrics reads conventional metrics from a delimited file with a header row.
func LoadMetrics(path string) ([]MetricRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open metrics file %s: %w", path, err)
	}
	defer file.Close()

	metrics, err := ReadMetricsCSV(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read metrics file %s: %w", path, err)
	}
	return metrics, nil
}

// ReadMetricsCSV parses conventional metrics rows.
func ReadMetricsCSV(r io.Reader) ([]MetricRecord, error) {
	var metrics []MetricRecord
	err := readTable(r, MetricColumns, func(line int, fields []string) error {
		tfft, err := parseDuration(line, "tfft", fields[2])
		if err != nil {
			return err
		}
		total, err := parseDuration(line, "totaltime", fields[3])
		if err != nil {
			return err
		}
		comp, err := parseCount(line, "comp", fields[4])
		if err != nil {
			return err
		}
		metrics = append(metrics, MetricRecord{
			Test:      fields[0],
			Approach:  fields[1],
			TFFT:      tfft,
			TotalTime: total,
			Comp:      comp,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

// parseDuration parses a finite, non-negative time value. ParseFloat alone
// accepts NaN, Inf and negatives, none of which can sit on a time axis.
func parseDuration(line int, column, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not a number", ErrMalformedRow, line, column, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: line %d: %s %q must be a finite number >= 0", ErrMalformedRow, line, column, raw)
	}
	return v, nil
}

// parseCount parses a non-negative integer.
func parseCount(line int, column, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrMalformedRow, line, column, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: line %d: %s %q must be >= 0", ErrMalformedRow, line, column, raw)
	}
	return v, nil
}

// readTable maps the named columns out of each row and hands them to fn in column order.
func readTable(r io.Reader, columns []string, fn func(line int, fields []string) error) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty input, expected header %s", ErrMissingColumn, strings.Join(columns, ","))
	}
	if err != nil {
		return err
	}

	positions := make([]int, len(columns))
	for i, name := range columns {
		positions[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				positions[i] = j
				break
			}
		}
		if positions[i] < 0 {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	fields := make([]string, len(columns))
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return fmt.Errorf("%w: line %d: %v", ErrMalformedRow, parseErr.Line, parseErr.Err)
			}
			return err
		}
		line, _ := reader.FieldPos(0)
		for i, pos := range positions {
			fields[i] = strings.TrimSpace(row[pos])
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
}
