// internal/metrics/auc.go
package metrics

import (
	"github.com/mwiater/dief/internal/trace"
	"gonum.org/v1/gonum/integrate"
)

// truncateByTime returns the prefix of points with Time <= limit.
// points must be ordered by time.
func truncateByTime(points []trace.Record, limit float64) []trace.Record {
	n := 0
	for n < len(points) && points[n].Time <= limit {
		n++
	}
	return points[:n]
}

// truncateByAnswer keeps the points whose answer index is <= limit, in order.
func truncateByAnswer(points []trace.Record, limit float64) []trace.Record {
	kept := make([]trace.Record, 0, len(points))
	for _, p := range points {
		if float64(p.Answer) <= limit {
			kept = append(kept, p)
		}
	}
	return kept
}

// curve splits points into the time and cumulative-answer series.
func curve(points []trace.Record) (times, answers []float64) {
	times = make([]float64, len(points))
	answers = make([]float64, len(points))
	for i, p := range points {
		times[i] = p.Time
		answers[i] = float64(p.Answer)
	}
	return times, answers
}

// withContinuation appends the flat terminal point (boundary, len(points)) that
// carries the curve to the boundary. A lone point with answer 0 means the
// approach produced nothing, so no segment is added.
func withContinuation(times, answers []float64, boundary float64) ([]float64, []float64) {
	if len(answers) == 1 && answers[0] == 0 {
		return times, answers
	}
	count := float64(len(answers))
	return append(times, boundary), append(answers, count)
}

// area integrates answers over times with the trapezoid rule. Curves with
// fewer than two points have no extent.
func area(times, answers []float64) float64 {
	if len(times) < 2 {
		return 0
	}
	return integrate.Trapezoidal(times, answers)
}

// AUCByTime computes the area under one answer trace truncated at time limit.
// With continueToEnd the curve is extended flat from the last kept answer to limit.
func AUCByTime(points []trace.Record, limit float64, continueToEnd bool) float64 {
	times, answers := curve(truncateByTime(points, limit))
	if continueToEnd {
		times, answers = withContinuation(times, answers, limit)
	}
	return area(times, answers)
}

// AUCByAnswers computes the area under one answer trace truncated after the
// answer with index limit. It never extrapolates past observed data.
func AUCByAnswers(points []trace.Record, limit float64) float64 {
	return area(curve(truncateByAnswer(points, limit)))
}
