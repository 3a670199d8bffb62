// internal/metrics/derive.go
package metrics

import "github.com/mwiater/dief/internal/trace"

// DeriveMetrics reconstructs the conventional metrics from the traces: tfft is
// the time of the first answer with index >= 1, totaltime the last observed
// time, and comp the number of such answers. Rows are ordered by (test, approach).
func DeriveMetrics(set *trace.Set) []trace.MetricRecord {
	var out []trace.MetricRecord
	for _, test := range set.Tests() {
		for _, approach := range set.Approaches(test) {
			points := set.Points(test, approach)
			m := trace.MetricRecord{Test: test, Approach: approach}
			seenFirst := false
			for _, p := range points {
				if p.Time > m.TotalTime {
					m.TotalTime = p.Time
				}
				if p.Answer < 1 {
					continue
				}
				m.Comp++
				if !seenFirst {
					m.TFFT = p.Time
					seenFirst = true
				}
			}
			out = append(out, m)
		}
	}
	return out
}
