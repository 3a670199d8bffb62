// internal/trace/types.go
// Package trace loads, indexes and writes answer traces and conventional metrics.
package trace

import "errors"

var (
	// ErrMissingColumn is returned when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedRow is returned when a row has the wrong shape or a non-numeric field.
	ErrMalformedRow = errors.New("malformed row")
	// ErrSchema is returned when a JSON trace document fails schema validation.
	ErrSchema = errors.New("trace document failed schema validation")
)

// Record is a single answer produced by an approach while running a test.
type Record struct {
	Test     string  `json:"test" yaml:"test"`
	Approach string  `json:"approach" yaml:"approach"`
	Answer   int     `json:"answer" yaml:"answer"`
	Time     float64 `json:"time" yaml:"time"`
}

// MetricRecord holds the conventional performance measurements for one test/approach pair.
type MetricRecord struct {
	Test      string  `json:"test" yaml:"test"`
	Approach  string  `json:"approach" yaml:"approach"`
	TFFT      float64 `json:"tfft" yaml:"tfft"`
	TotalTime float64 `json:"totaltime" yaml:"totaltime"`
	Comp      int     `json:"comp" yaml:"comp"`
}

// Key identifies one answer trace inside a Set.
type Key struct {
	Test     string
	Approach string
}

// TraceColumns is the column order of a trace file.
var TraceColumns = []string{"test", "approach", "answer", "time"}

// MetricColumns is the column order of a metrics file.
var MetricColumns = []string{"test", "approach", "tfft", "totaltime", "comp"}
