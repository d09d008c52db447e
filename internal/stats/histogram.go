package stats

import (
	"errors"
	"math"
)

// ErrNoValues is returned when a histogram is requested over a column with
// no non-missing values.
var ErrNoValues = errors.New("no values to bin")

// Histogram buckets values into equal-width bins spanning the observed
// min/max. The last bin is closed on the right, so a value equal to the
// maximum lands in the final bin and the bin counts always sum to the
// number of non-missing values.
type Histogram struct {
	Min    float64
	Max    float64
	Width  float64
	Counts []int
}

// NewHistogram bins the non-missing values into the given number of
// equal-width bins. A single distinct value is binned over a unit-wide
// range centered on it.
func NewHistogram(values []float64, bins int) (Histogram, error) {
	xs := dropMissing(values)
	if len(xs) == 0 {
		return Histogram{}, ErrNoValues
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	h := Histogram{
		Min:    lo,
		Max:    hi,
		Width:  (hi - lo) / float64(bins),
		Counts: make([]int, bins),
	}
	for _, x := range xs {
		i := int((x - lo) / h.Width)
		if i >= bins {
			i = bins - 1
		}
		h.Counts[i]++
	}
	return h, nil
}

// Total returns the summed frequency across all bins.
func (h Histogram) Total() int {
	var n int
	for _, c := range h.Counts {
		n += c
	}
	return n
}
