// internal/metrics/analyzer.go
package metrics

import (
	"runtime"
	"sort"

	"github.com/mwiater/dief/internal/trace"
	"golang.org/x/sync/errgroup"
)

// ContinuousPercentages are the answer ratios reported by ContinuousEfficiency.
var ContinuousPercentages = [4]float64{0.25, 0.50, 0.75, 1.00}

// Analyzer computes the per-test comparison tables. Tests are processed
// concurrently on at most Workers goroutines; zero means GOMAXPROCS.
// Output order is always (test, approach).
type Analyzer struct {
	Workers int
	// Progress, when set, is called once per finished test with the number
	// of rows it produced. It may be called from several goroutines at once.
	Progress func(test string, rows int)
}

var defaultAnalyzer = Analyzer{}

func (a Analyzer) limit() int {
	if a.Workers > 0 {
		return a.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// forEachTest runs fn for every test on the bounded pool and concatenates the
// per-test outputs in test order.
func forEachTest[T any](a Analyzer, tests []string, fn func(test string) []T) []T {
	parts := make([][]T, len(tests))

	var g errgroup.Group
	g.SetLimit(a.limit())
	for i, test := range tests {
		g.Go(func() error {
			parts[i] = fn(test)
			if a.Progress != nil {
				a.Progress(test, len(parts[i]))
			}
			return nil
		})
	}
	_ = g.Wait()

	var out []T
	for _, part := range parts {
		out = append(out, part...)
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// PerformanceWithDieft joins dief@t with the conventional metrics. For every
// test present in metrics, dief@t is computed at the test's default time;
// approaches missing from either side are skipped.
func (a Analyzer) PerformanceWithDieft(set *trace.Set, metrics []trace.MetricRecord, continueToEnd bool) []CompositeResult {
	byTest := make(map[string]map[string]trace.MetricRecord)
	for _, m := range metrics {
		approaches, ok := byTest[m.Test]
		if !ok {
			approaches = make(map[string]trace.MetricRecord)
			byTest[m.Test] = approaches
		}
		if _, dup := approaches[m.Approach]; !dup {
			approaches[m.Approach] = m
		}
	}

	tests := make([]string, 0, len(byTest))
	for test := range byTest {
		tests = append(tests, test)
	}
	sort.Strings(tests)

	opts := TOptions{ContinueToEnd: continueToEnd}
	return forEachTest(a, tests, func(test string) []CompositeResult {
		var rows []CompositeResult
		for _, r := range DiefT(set, test, opts) {
			m, ok := byTest[test][r.Approach]
			if !ok {
				continue
			}
			rows = append(rows, composite(m, r.Value))
		}
		return rows
	})
}

func composite(m trace.MetricRecord, dieft float64) CompositeResult {
	comp := float64(m.Comp)
	return CompositeResult{
		Test:         m.Test,
		Approach:     m.Approach,
		TFFT:         m.TFFT,
		TotalTime:    m.TotalTime,
		Comp:         m.Comp,
		Throughput:   comp / m.TotalTime,
		InvTFFT:      1 / m.TFFT,
		InvTotalTime: 1 / m.TotalTime,
		DiefT:        dieft,
	}
}

// ContinuousEfficiency computes dief@k at 25, 50, 75 and 100 percent of the
// default k for every test. Approaches absent from any of the four partial
// results are skipped.
func (a Analyzer) ContinuousEfficiency(set *trace.Set) []ContinuousResult {
	return forEachTest(a, set.Tests(), func(test string) []ContinuousResult {
		var partial [len(ContinuousPercentages)][]Result
		for i, kp := range ContinuousPercentages {
			partial[i] = DiefKPercent(set, test, At(kp))
		}

		var rows []ContinuousResult
		for _, approach := range set.Approaches(test) {
			var values [len(ContinuousPercentages)]float64
			complete := true
			for i := range partial {
				v, ok := ValueOf(partial[i], approach)
				if !ok {
					complete = false
					break
				}
				values[i] = v
			}
			if !complete {
				continue
			}
			rows = append(rows, ContinuousResult{
				Test:     test,
				Approach: approach,
				DiefK25:  values[0],
				DiefK50:  values[1],
				DiefK75:  values[2],
				DiefK100: values[3],
			})
		}
		return rows
	})
}

// PerformanceWithDieft runs Analyzer.PerformanceWithDieft with default settings.
func PerformanceWithDieft(set *trace.Set, metrics []trace.MetricRecord, continueToEnd bool) []CompositeResult {
	return defaultAnalyzer.PerformanceWithDieft(set, metrics, continueToEnd)
}

// ContinuousEfficiency runs Analyzer.ContinuousEfficiency with default settings.
func ContinuousEfficiency(set *trace.Set) []ContinuousResult {
	return defaultAnalyzer.ContinuousEfficiency(set)
}
