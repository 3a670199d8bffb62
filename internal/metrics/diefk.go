// internal/metrics/diefk.go
package metrics

import "github.com/mwiater/dief/internal/trace"

// DefaultK returns the smallest number of answers produced by any approach on
// test. It is the default bound for dief@k.
func DefaultK(set *trace.Set, test string) (int, bool) {
	approaches := set.Approaches(test)
	if len(approaches) == 0 {
		return 0, false
	}
	k := len(set.Points(test, approaches[0]))
	for _, approach := range approaches[1:] {
		if n := len(set.Points(test, approach)); n < k {
			k = n
		}
	}
	return k, true
}

// DiefK computes dief@k for every approach on test, ordered by approach.
// Unset k resolves to DefaultK. A fractional k keeps the answers whose index
// does not exceed it.
func DiefK(set *trace.Set, test string, k Bound) []Result {
	defaultK, ok := DefaultK(set, test)
	if !ok {
		return []Result{}
	}
	return diefK(set, test, k.Or(float64(defaultK)))
}

// DiefKPercent computes dief@k with k set to kp times DefaultK, kp in [0, 1].
// Unset kp, or kp = 1, gives the same values as DiefK with an unset k.
func DiefKPercent(set *trace.Set, test string, kp Bound) []Result {
	defaultK, ok := DefaultK(set, test)
	if !ok {
		return []Result{}
	}
	return diefK(set, test, float64(defaultK)*kp.Or(1))
}

func diefK(set *trace.Set, test string, limit float64) []Result {
	approaches := set.Approaches(test)
	results := make([]Result, 0, len(approaches))
	for _, approach := range approaches {
		results = append(results, Result{
			Test:     test,
			Approach: approach,
			Value:    AUCByAnswers(set.Points(test, approach), limit),
		})
	}
	return results
}
