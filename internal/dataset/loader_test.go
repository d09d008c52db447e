package dataset

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "earthquakes.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWellFormed(t *testing.T) {
	path := writeCSV(t, `time,magnitude,place,longitude,latitude,depth
2024-01-05 10:30:00,5.1,"Off coast of Chile",-72.1,-35.4,22.5
2024-01-06 11:00:00,6.0,"Honshu, Japan",142.3,38.2,40.0
2024-01-07 12:15:00,4.8,Alaska,-150.0,61.1,10.0
`)

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	rows, cols := rs.Shape()
	if rows != 3 {
		t.Errorf("expected 3 rows, got %d", rows)
	}
	if cols != 6 {
		t.Errorf("expected 6 columns, got %d", cols)
	}
	if rs.Records[1].Magnitude != 6.0 {
		t.Errorf("expected magnitude 6.0, got %g", rs.Records[1].Magnitude)
	}
	if rs.Records[0].Depth != 22.5 {
		t.Errorf("expected depth 22.5, got %g", rs.Records[0].Depth)
	}
	if rs.Records[2].Place != "Alaska" {
		t.Errorf("expected place Alaska, got %q", rs.Records[2].Place)
	}
	if rs.Records[0].RawTime != "2024-01-05 10:30:00" {
		t.Errorf("unexpected raw time %q", rs.Records[0].RawTime)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if errors.Is(err, ErrParse) {
		t.Error("missing file must not be classified as a parse error")
	}
}

func TestLoadMalformedCSV(t *testing.T) {
	path := writeCSV(t, "time,magnitude\n\"unterminated,5.0\n")

	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestLoadBadNumericValue(t *testing.T) {
	path := writeCSV(t, "time,magnitude,depth\n2024-01-05,abc,10\n")

	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for non-numeric magnitude, got %v", err)
	}
}

func TestLoadEmptyCellsAreMissing(t *testing.T) {
	path := writeCSV(t, "time,magnitude,depth\n2024-01-05,5.0,\n2024-01-06,,12.0\n")

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !math.IsNaN(rs.Records[0].Depth) {
		t.Errorf("expected NaN depth, got %g", rs.Records[0].Depth)
	}
	if !math.IsNaN(rs.Records[1].Magnitude) {
		t.Errorf("expected NaN magnitude, got %g", rs.Records[1].Magnitude)
	}
	if rs.Records[1].Depth != 12.0 {
		t.Errorf("expected depth 12.0, got %g", rs.Records[1].Depth)
	}
}

func TestLoadRequiresMagnitudeColumn(t *testing.T) {
	path := writeCSV(t, "time,depth\n2024-01-05,10\n")

	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse for missing magnitude column, got %v", err)
	}
}

func TestLoadHeaderCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "Time,MAGNITUDE,Depth\n2024-01-05,5.5,33\n")

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if rs.Records[0].Magnitude != 5.5 {
		t.Errorf("expected magnitude 5.5, got %g", rs.Records[0].Magnitude)
	}
	if rs.Records[0].Depth != 33 {
		t.Errorf("expected depth 33, got %g", rs.Records[0].Depth)
	}
}

func TestLoadPassesThroughExtraColumns(t *testing.T) {
	path := writeCSV(t, "time,magnitude,status,net\n2024-01-05,5.0,reviewed,us\n")

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	_, cols := rs.Shape()
	if cols != 4 {
		t.Errorf("expected 4 columns, got %d", cols)
	}
	if rs.Records[0].Extra["status"] != "reviewed" {
		t.Errorf("expected extra column status=reviewed, got %q", rs.Records[0].Extra["status"])
	}
	if rs.Records[0].Extra["net"] != "us" {
		t.Errorf("expected extra column net=us, got %q", rs.Records[0].Extra["net"])
	}
}

func TestLoadEmptyDataset(t *testing.T) {
	path := writeCSV(t, "time,magnitude,depth\n")

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := rs.Shape()
	if rows != 0 || cols != 3 {
		t.Errorf("expected shape (0, 3), got (%d, %d)", rows, cols)
	}
}
