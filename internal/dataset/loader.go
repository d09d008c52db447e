package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
)

// ErrParse marks a malformed dataset: bad CSV structure, a non-numeric cell
// in a numeric column, or an unparseable timestamp. Missing files are not
// ErrParse; they wrap the underlying fs error.
var ErrParse = errors.New("dataset parse error")

// recognized maps lowercase header names to the typed Record fields.
// Anything else is carried through in Record.Extra untouched.
var recognized = map[string]bool{
	"time":      true,
	"magnitude": true,
	"depth":     true,
	"latitude":  true,
	"longitude": true,
	"place":     true,
}

// Load reads a comma-separated file with a header row into a RecordSet.
//
// The magnitude column is required. Empty numeric cells load as NaN;
// non-empty cells that fail to parse are a terminal error. Column matching
// is case-insensitive and unrecognized columns are passed through.
func Load(path string) (*model.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: no header row", ErrParse, path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["magnitude"]; !ok {
		return nil, fmt.Errorf("%w: %s: required column %q not found", ErrParse, path, "magnitude")
	}

	rs := &model.RecordSet{
		Source:  path,
		Columns: append([]string(nil), header...),
	}

	for n, row := range rows[1:] {
		rec := model.Record{
			Magnitude: math.NaN(),
			Depth:     math.NaN(),
			Latitude:  math.NaN(),
			Longitude: math.NaN(),
		}

		cell := func(name string) (string, bool) {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return "", false
			}
			return strings.TrimSpace(row[i]), true
		}

		for _, col := range model.NumericColumns {
			v, ok := cell(col)
			if !ok || v == "" {
				continue
			}
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: row %d: column %q: invalid numeric value %q", ErrParse, path, n+1, col, v)
			}
			switch col {
			case "magnitude":
				rec.Magnitude = x
			case "depth":
				rec.Depth = x
			case "latitude":
				rec.Latitude = x
			case "longitude":
				rec.Longitude = x
			}
		}

		if v, ok := cell("time"); ok {
			rec.RawTime = v
		}
		if v, ok := cell("place"); ok {
			rec.Place = v
		}

		// Carry unrecognized columns through unused.
		for i, h := range header {
			name := strings.ToLower(strings.TrimSpace(h))
			if recognized[name] || i >= len(row) {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[name] = strings.TrimSpace(row[i])
		}

		rs.Records = append(rs.Records, rec)
	}

	return rs, nil
}
