// internal/metrics/analyzer_test.go
package metrics

import (
	"math"
	"sync"
	"testing"

	"github.com/mwiater/dief/internal/trace"
)

func TestPerformanceWithDieft(t *testing.T) {
	set := fixture()
	metrics := []trace.MetricRecord{
		{Test: "Q1", Approach: "B", TFFT: 0.5, TotalTime: 3, Comp: 2},
		{Test: "Q1", Approach: "A", TFFT: 1, TotalTime: 4, Comp: 3},
		{Test: "Q1", Approach: "A", TFFT: 100, TotalTime: 100, Comp: 100},
		{Test: "Q1", Approach: "Ghost", TFFT: 1, TotalTime: 1, Comp: 1},
		{Test: "Q9", Approach: "A", TFFT: 1, TotalTime: 1, Comp: 1},
	}

	rows := PerformanceWithDieft(set, metrics, true)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}

	a, b := rows[0], rows[1]
	if a.Approach != "A" || b.Approach != "B" {
		t.Fatalf("expected rows ordered A, B, got %s, %s", a.Approach, b.Approach)
	}
	if a.TFFT != 1 || a.TotalTime != 4 || a.Comp != 3 {
		t.Fatalf("expected first metric row for A to win, got %+v", a)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"A throughput", a.Throughput, 0.75},
		{"A invtfft", a.InvTFFT, 1},
		{"A invtotaltime", a.InvTotalTime, 0.25},
		{"A dieft", a.DiefT, 6.5},
		{"B throughput", b.Throughput, 2.0 / 3.0},
		{"B invtfft", b.InvTFFT, 2},
		{"B invtotaltime", b.InvTotalTime, 1.0 / 3.0},
		{"B dieft", b.DiefT, 5.75},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}

	rows = PerformanceWithDieft(set, metrics, false)
	if !approxEqual(rows[1].DiefT, 3.75) {
		t.Fatalf("expected B dieft 3.75 without continuation, got %v", rows[1].DiefT)
	}
}

func TestPerformanceWithDieftDegenerateMetrics(t *testing.T) {
	set := fixture()
	metrics := []trace.MetricRecord{{Test: "Q3", Approach: "C", TFFT: 0, TotalTime: 0, Comp: 0}}

	rows := PerformanceWithDieft(set, metrics, true)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if !math.IsNaN(row.Throughput) {
		t.Fatalf("expected NaN throughput, got %v", row.Throughput)
	}
	if !math.IsInf(row.InvTFFT, 1) || !math.IsInf(row.InvTotalTime, 1) {
		t.Fatalf("expected +Inf inverses, got %v %v", row.InvTFFT, row.InvTotalTime)
	}
	if row.DiefT != 0 {
		t.Fatalf("expected dieft 0, got %v", row.DiefT)
	}
}

func TestPerformanceWithDieftEmpty(t *testing.T) {
	rows := PerformanceWithDieft(fixture(), nil, true)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", rows)
	}
}

func TestContinuousEfficiency(t *testing.T) {
	rows := ContinuousEfficiency(linearFixture())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []ContinuousResult{
		{Test: "Q4", Approach: "A", DiefK25: 1.5, DiefK50: 7.5, DiefK75: 17.5, DiefK100: 31.5},
		{Test: "Q4", Approach: "B", DiefK25: 0.75, DiefK50: 3.75, DiefK75: 8.75, DiefK100: 15.75},
	}
	for i, w := range want {
		got := rows[i]
		if got.Test != w.Test || got.Approach != w.Approach ||
			!approxEqual(got.DiefK25, w.DiefK25) || !approxEqual(got.DiefK50, w.DiefK50) ||
			!approxEqual(got.DiefK75, w.DiefK75) || !approxEqual(got.DiefK100, w.DiefK100) {
			t.Fatalf("row %d: expected %+v, got %+v", i, w, got)
		}
	}
}

func TestAnalyzerOrderingIsDeterministic(t *testing.T) {
	var records []trace.Record
	for _, test := range []string{"T3", "T1", "T2", "T5", "T4"} {
		for _, approach := range []string{"b", "a"} {
			for i := 1; i <= 4; i++ {
				records = append(records, trace.Record{Test: test, Approach: approach, Answer: i, Time: float64(i)})
			}
		}
	}
	set := trace.NewSet(records)
	metrics := DeriveMetrics(set)

	for _, workers := range []int{1, 3, 16} {
		a := Analyzer{Workers: workers}
		perf := a.PerformanceWithDieft(set, metrics, true)
		cont := a.ContinuousEfficiency(set)
		if len(perf) != 10 || len(cont) != 10 {
			t.Fatalf("workers=%d: expected 10 rows, got %d and %d", workers, len(perf), len(cont))
		}
		for i := 1; i < len(perf); i++ {
			prev, cur := perf[i-1], perf[i]
			if prev.Test > cur.Test || (prev.Test == cur.Test && prev.Approach >= cur.Approach) {
				t.Fatalf("workers=%d: performance rows out of order at %d", workers, i)
			}
			if cont[i].Test != perf[i].Test || cont[i].Approach != perf[i].Approach {
				t.Fatalf("workers=%d: continuous rows out of order at %d", workers, i)
			}
		}
	}
}

func TestAnalyzerProgress(t *testing.T) {
	set := fixture()

	var mu sync.Mutex
	seen := map[string]int{}
	a := Analyzer{
		Workers: 2,
		Progress: func(test string, rows int) {
			mu.Lock()
			defer mu.Unlock()
			seen[test] = rows
		},
	}

	a.ContinuousEfficiency(linearFixture())
	if len(seen) != 1 || seen["Q4"] != 2 {
		t.Fatalf("expected progress for Q4 with 2 rows, got %v", seen)
	}

	seen = map[string]int{}
	a.PerformanceWithDieft(set, []trace.MetricRecord{{Test: "Q1", Approach: "A", TFFT: 1, TotalTime: 4, Comp: 3}}, true)
	if len(seen) != 1 || seen["Q1"] != 1 {
		t.Fatalf("expected progress for Q1 with 1 row, got %v", seen)
	}
}

func TestDeriveMetrics(t *testing.T) {
	got := DeriveMetrics(fixture())
	want := []trace.MetricRecord{
		{Test: "Q1", Approach: "A", TFFT: 1, TotalTime: 4, Comp: 3},
		{Test: "Q1", Approach: "B", TFFT: 0.5, TotalTime: 3, Comp: 2},
		{Test: "Q3", Approach: "C", TFFT: 0, TotalTime: 0, Comp: 0},
		{Test: "Q3", Approach: "D", TFFT: 1, TotalTime: 2, Comp: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
