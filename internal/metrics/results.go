// internal/metrics/results.go
// Package metrics computes diefficiency metrics (dief@t, dief@k) from answer
// traces and joins them with conventional query performance metrics.
package metrics

// Result is the dief@t or dief@k value of one approach on one test.
type Result struct {
	Test     string  `json:"test" yaml:"test"`
	Approach string  `json:"approach" yaml:"approach"`
	Value    float64 `json:"value" yaml:"value"`
}

// CompositeResult combines dief@t with the conventional metrics of one approach on one test.
// Throughput and the inverses follow IEEE division: a zero denominator yields +Inf,
// or NaN when the numerator is also zero.
type CompositeResult struct {
	Test         string  `json:"test" yaml:"test"`
	Approach     string  `json:"approach" yaml:"approach"`
	TFFT         float64 `json:"tfft" yaml:"tfft"`
	TotalTime    float64 `json:"totaltime" yaml:"totaltime"`
	Comp         int     `json:"comp" yaml:"comp"`
	Throughput   float64 `json:"throughput" yaml:"throughput"`
	InvTFFT      float64 `json:"invtfft" yaml:"invtfft"`
	InvTotalTime float64 `json:"invtotaltime" yaml:"invtotaltime"`
	DiefT        float64 `json:"dieft" yaml:"dieft"`
}

// ContinuousResult holds dief@k at 25, 50, 75 and 100 percent of the answers.
type ContinuousResult struct {
	Test     string  `json:"test" yaml:"test"`
	Approach string  `json:"approach" yaml:"approach"`
	DiefK25  float64 `json:"diefk25" yaml:"diefk25"`
	DiefK50  float64 `json:"diefk50" yaml:"diefk50"`
	DiefK75  float64 `json:"diefk75" yaml:"diefk75"`
	DiefK100 float64 `json:"diefk100" yaml:"diefk100"`
}

// ValueOf returns the value reported for approach, if present.
func ValueOf(results []Result, approach string) (float64, bool) {
	for _, r := range results {
		if r.Approach == approach {
			return r.Value, true
		}
	}
	return 0, false
}
