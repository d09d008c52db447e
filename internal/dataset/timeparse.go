package dataset

import (
	"fmt"
	"time"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
)

// timeLayouts are tried in order. USGS CSV exports use RFC3339 with
// millisecond precision; quakescope's own fetch output uses the space form.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw time cell against the accepted layouts.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrParse, s)
}

// NormalizeTime replaces each record's raw time string with a parsed
// time.Time, in place. Row order and count are preserved. Empty cells are
// tolerated as missing; a non-empty cell that fails to parse is a terminal
// error, with no row-level skip.
func NormalizeTime(rs *model.RecordSet) error {
	for i := range rs.Records {
		raw := rs.Records[i].RawTime
		if raw == "" {
			continue
		}
		t, err := ParseTimestamp(raw)
		if err != nil {
			return fmt.Errorf("%s: row %d: %w", rs.Source, i+1, err)
		}
		rs.Records[i].Time = t
	}
	return nil
}
