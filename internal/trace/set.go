// internal/trace/set.go
package trace

import (
	"slices"
	"sort"
)

// Set is an immutable, indexed collection of answer trace records.
type Set struct {
	records    []Record
	groups     map[Key][]Record
	approaches map[string][]string
	maxTime    map[string]float64
	tests      []string
}

// NewSet copies records and indexes them by test and approach. Within every
// (test, approach) group the records are stably sorted by time.
func NewSet(records []Record) *Set {
	s := &Set{
		records:    slices.Clone(records),
		groups:     make(map[Key][]Record),
		approaches: make(map[string][]string),
		maxTime:    make(map[string]float64),
	}

	for _, rec := range s.records {
		key := Key{Test: rec.Test, Approach: rec.Approach}
		if _, ok := s.groups[key]; !ok {
			s.approaches[rec.Test] = append(s.approaches[rec.Test], rec.Approach)
		}
		s.groups[key] = append(s.groups[key], rec)

		if current, ok := s.maxTime[rec.Test]; !ok || rec.Time > current {
			s.maxTime[rec.Test] = rec.Time
		}
	}

	for key, group := range s.groups {
		sort.SliceStable(group, func(i, j int) bool { return group[i].Time < group[j].Time })
		s.groups[key] = group
	}
	for test, approaches := range s.approaches {
		sort.Strings(approaches)
		s.approaches[test] = approaches
		s.tests = append(s.tests, test)
	}
	sort.Strings(s.tests)

	return s
}

// Len returns the number of records in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy of the records in load order.
func (s *Set) Records() []Record {
	if s == nil {
		return nil
	}
	return slices.Clone(s.records)
}

// Tests returns the distinct test identifiers, sorted.
func (s *Set) Tests() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.tests)
}

// Approaches returns the distinct approaches with at least one record for test, sorted.
func (s *Set) Approaches(test string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.approaches[test])
}

// Points returns the trace of one approach on one test ordered by time.
// The returned slice must not be modified.
func (s *Set) Points(test, approach string) []Record {
	if s == nil {
		return nil
	}
	return s.groups[Key{Test: test, Approach: approach}]
}

// MaxTime returns the latest time observed for test across all approaches.
func (s *Set) MaxTime(test string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	t, ok := s.maxTime[test]
	return t, ok
}
