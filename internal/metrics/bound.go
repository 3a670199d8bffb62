// internal/metrics/bound.go
package metrics

import "fmt"

// Sentinel is the value accepted at the command line to mean "use the default bound".
const Sentinel = -1.0

// Bound is an optional truncation boundary: a time limit for dief@t, an answer
// count for dief@k, or a ratio for dief@k%.
type Bound struct {
	value float64
	set   bool
}

// Unset is the zero Bound; engines resolve it to their default.
var Unset = Bound{}

// At returns a Bound fixed at v.
func At(v float64) Bound {
	return Bound{value: v, set: true}
}

// FromSentinel maps the -1 sentinel to Unset and any other value to At(v).
func FromSentinel(v float64) Bound {
	if v == Sentinel {
		return Unset
	}
	return At(v)
}

// Value returns the bound and whether it was set.
func (b Bound) Value() (float64, bool) {
	return b.value, b.set
}

// IsSet reports whether the bound carries an explicit value.
func (b Bound) IsSet() bool {
	return b.set
}

// Or returns the bound value, or fallback when unset.
func (b Bound) Or(fallback float64) float64 {
	if b.set {
		return b.value
	}
	return fallback
}

func (b Bound) String() string {
	if !b.set {
		return "default"
	}
	return fmt.Sprintf("%g", b.value)
}
