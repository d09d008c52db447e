package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record represents a single earthquake observation.
// Numeric fields use NaN to mark a missing value.
type Record struct {
	Time      time.Time // zero when the dataset has no time value for this row
	RawTime   string    // original time cell, kept until normalization
	Magnitude float64
	Depth     float64
	Latitude  float64
	Longitude float64
	Place     string
	Extra     map[string]string // columns beyond the recognized set, passed through
}

// RecordSet is the full in-memory table of earthquake observations.
type RecordSet struct {
	Source  string   // originating file path
	Columns []string // header names in file order
	Records []Record
}

// NumericColumns lists the recognized numeric column names in dataset order.
var NumericColumns = []string{"magnitude", "depth", "latitude", "longitude"}

// Shape returns the row and column counts of the record set.
func (rs *RecordSet) Shape() (rows, cols int) {
	return len(rs.Records), len(rs.Columns)
}

// Head returns the first n records (fewer if the set is smaller).
func (rs *RecordSet) Head(n int) []Record {
	if n > len(rs.Records) {
		n = len(rs.Records)
	}
	return rs.Records[:n]
}

// HasColumn reports whether the dataset header contains the named column.
// Matching is case-insensitive.
func (rs *RecordSet) HasColumn(name string) bool {
	for _, c := range rs.Columns {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Numeric returns the values of a recognized numeric column in row order,
// with NaN marking missing cells. Returns nil for unknown column names.
func (rs *RecordSet) Numeric(name string) []float64 {
	var pick func(r Record) float64
	switch strings.ToLower(name) {
	case "magnitude":
		pick = func(r Record) float64 { return r.Magnitude }
	case "depth":
		pick = func(r Record) float64 { return r.Depth }
	case "latitude":
		pick = func(r Record) float64 { return r.Latitude }
	case "longitude":
		pick = func(r Record) float64 { return r.Longitude }
	default:
		return nil
	}

	vals := make([]float64, len(rs.Records))
	for i, r := range rs.Records {
		vals[i] = pick(r)
	}
	return vals
}

// Cell renders the value of the named column as display text. Missing
// numeric values render as "NaN", matching the loaded representation.
func (r Record) Cell(col string) string {
	switch strings.ToLower(col) {
	case "time":
		if !r.Time.IsZero() {
			return r.Time.Format("2006-01-02 15:04:05")
		}
		return r.RawTime
	case "magnitude":
		return formatFloat(r.Magnitude)
	case "depth":
		return formatFloat(r.Depth)
	case "latitude":
		return formatFloat(r.Latitude)
	case "longitude":
		return formatFloat(r.Longitude)
	case "place":
		return r.Place
	default:
		return r.Extra[col]
	}
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// MarshalJSON renders missing numeric values as null; encoding/json rejects NaN.
func (r Record) MarshalJSON() ([]byte, error) {
	var ts string
	if !r.Time.IsZero() {
		ts = r.Time.UTC().Format(time.RFC3339)
	}
	return json.Marshal(struct {
		Time      string            `json:"time,omitempty"`
		Magnitude *float64          `json:"magnitude"`
		Depth     *float64          `json:"depth"`
		Latitude  *float64          `json:"latitude,omitempty"`
		Longitude *float64          `json:"longitude,omitempty"`
		Place     string            `json:"place,omitempty"`
		Extra     map[string]string `json:"extra,omitempty"`
	}{
		Time:      ts,
		Magnitude: Nullable(r.Magnitude),
		Depth:     Nullable(r.Depth),
		Latitude:  Nullable(r.Latitude),
		Longitude: Nullable(r.Longitude),
		Place:     r.Place,
		Extra:     r.Extra,
	})
}

// Nullable maps NaN to nil so a value can marshal as JSON null.
func Nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
