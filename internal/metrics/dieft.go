// internal/metrics/dieft.go
package metrics

import "github.com/mwiater/dief/internal/trace"

// TOptions configures a dief@t computation.
type TOptions struct {
	// Time is the point in time to compute dief@t at. Unset means the time the
	// slowest approach on the test produced its last answer.
	Time Bound
	// ContinueToEnd extends each curve flat from its last answer to Time.
	ContinueToEnd bool
}

// DefaultTOptions returns the default dief@t options: unset time, continuation enabled.
func DefaultTOptions() TOptions {
	return TOptions{ContinueToEnd: true}
}

// DiefT computes dief@t for every approach that has records on test, ordered
// by approach. An unknown test yields an empty result.
func DiefT(set *trace.Set, test string, opts TOptions) []Result {
	approaches := set.Approaches(test)
	if len(approaches) == 0 {
		return []Result{}
	}

	maxTime, _ := set.MaxTime(test)
	limit := opts.Time.Or(maxTime)

	results := make([]Result, 0, len(approaches))
	for _, approach := range approaches {
		results = append(results, Result{
			Test:     test,
			Approach: approach,
			Value:    AUCByTime(set.Points(test, approach), limit, opts.ContinueToEnd),
		})
	}
	return results
}
