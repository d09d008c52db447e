package stats

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
)

// ColumnStats holds the descriptive statistics of one numeric column,
// computed over non-missing values only. With no usable values every
// statistic is NaN; this is not an error condition.
type ColumnStats struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation (n-1)
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// CentralTendency summarizes magnitude with the three classic measures.
type CentralTendency struct {
	Mean   float64
	Median float64
	Mode   float64
}

// Report is a point-in-time snapshot of a dataset overview: shape, a head
// sample, per-column statistics, and the rendered chart locations.
type Report struct {
	Source      string          `json:"source"`
	Rows        int             `json:"rows"`
	Cols        int             `json:"cols"`
	Columns     []string        `json:"columns"`
	Head        []model.Record  `json:"head"`
	Describe    []ColumnStats   `json:"describe"`
	Central     CentralTendency `json:"central_tendency"`
	Charts      []string        `json:"charts,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// BuildReport computes the overview snapshot for a record set. Chart paths
// are appended by the caller once rendering succeeds.
func BuildReport(rs *model.RecordSet) Report {
	rows, cols := rs.Shape()
	rep := Report{
		Source:      rs.Source,
		Rows:        rows,
		Cols:        cols,
		Columns:     rs.Columns,
		Head:        rs.Head(5),
		Central:     Central(rs.Numeric("magnitude")),
		GeneratedAt: time.Now().UTC(),
	}
	for _, col := range model.NumericColumns {
		if rs.HasColumn(col) {
			rep.Describe = append(rep.Describe, Describe(col, rs.Numeric(col)))
		}
	}
	return rep
}

// Describe computes count, mean, std, min, quartiles, and max for a column.
func Describe(name string, values []float64) ColumnStats {
	xs := dropMissing(values)
	cs := ColumnStats{
		Name:   name,
		Count:  len(xs),
		Mean:   math.NaN(),
		Std:    math.NaN(),
		Min:    math.NaN(),
		Q25:    math.NaN(),
		Median: math.NaN(),
		Q75:    math.NaN(),
		Max:    math.NaN(),
	}
	if len(xs) == 0 {
		return cs
	}

	sort.Float64s(xs)
	cs.Min = xs[0]
	cs.Max = xs[len(xs)-1]
	cs.Q25 = quantile(xs, 0.25)
	cs.Median = quantile(xs, 0.5)
	cs.Q75 = quantile(xs, 0.75)
	cs.Mean, cs.Std = meanStd(xs)
	return cs
}

// Central computes mean, median, and mode over the non-missing values.
func Central(values []float64) CentralTendency {
	xs := dropMissing(values)
	ct := CentralTendency{Mean: math.NaN(), Median: math.NaN(), Mode: math.NaN()}
	if len(xs) == 0 {
		return ct
	}
	sort.Float64s(xs)
	ct.Mean, _ = meanStd(xs)
	ct.Median = quantile(xs, 0.5)
	ct.Mode = mode(xs)
	return ct
}

// StatNames lists the describe rows in output order.
var StatNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Stat returns the named statistic for table-oriented rendering.
func (cs ColumnStats) Stat(name string) float64 {
	switch strings.ToLower(name) {
	case "count":
		return float64(cs.Count)
	case "mean":
		return cs.Mean
	case "std":
		return cs.Std
	case "min":
		return cs.Min
	case "25%":
		return cs.Q25
	case "50%":
		return cs.Median
	case "75%":
		return cs.Q75
	case "max":
		return cs.Max
	}
	return math.NaN()
}

// MarshalJSON renders NaN statistics as null.
func (cs ColumnStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string   `json:"name"`
		Count  int      `json:"count"`
		Mean   *float64 `json:"mean"`
		Std    *float64 `json:"std"`
		Min    *float64 `json:"min"`
		Q25    *float64 `json:"q25"`
		Median *float64 `json:"median"`
		Q75    *float64 `json:"q75"`
		Max    *float64 `json:"max"`
	}{
		Name:   cs.Name,
		Count:  cs.Count,
		Mean:   model.Nullable(cs.Mean),
		Std:    model.Nullable(cs.Std),
		Min:    model.Nullable(cs.Min),
		Q25:    model.Nullable(cs.Q25),
		Median: model.Nullable(cs.Median),
		Q75:    model.Nullable(cs.Q75),
		Max:    model.Nullable(cs.Max),
	})
}

// MarshalJSON renders NaN measures as null.
func (ct CentralTendency) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mean   *float64 `json:"mean"`
		Median *float64 `json:"median"`
		Mode   *float64 `json:"mode"`
	}{model.Nullable(ct.Mean), model.Nullable(ct.Median), model.Nullable(ct.Mode)})
}

// meanStd computes the mean and sample standard deviation in one pass
// using Welford's update. Std is NaN for fewer than two values.
func meanStd(xs []float64) (mean, std float64) {
	var m2 float64
	for i, x := range xs {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	if len(xs) < 2 {
		return mean, math.NaN()
	}
	return mean, math.Sqrt(m2 / float64(len(xs)-1))
}

// quantile interpolates linearly between closest ranks. xs must be sorted.
func quantile(xs []float64, q float64) float64 {
	pos := q * float64(len(xs)-1)
	lo := int(math.Floor(pos))
	if lo == len(xs)-1 {
		return xs[lo]
	}
	frac := pos - float64(lo)
	return xs[lo] + frac*(xs[lo+1]-xs[lo])
}

// mode returns the most frequent value; ties resolve to the smallest.
// xs must be sorted.
func mode(xs []float64) float64 {
	best := xs[0]
	bestCount, run := 0, 0
	for i, x := range xs {
		if i > 0 && x == xs[i-1] {
			run++
		} else {
			run = 1
		}
		if run > bestCount {
			bestCount = run
			best = x
		}
	}
	return best
}

func dropMissing(values []float64) []float64 {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	return xs
}
