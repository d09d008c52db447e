package stats

import (
	"math"
	"testing"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
)

func TestDescribeConstantColumn(t *testing.T) {
	cs := Describe("magnitude", []float64{4.2, 4.2, 4.2, 4.2})

	if cs.Count != 4 {
		t.Errorf("expected count 4, got %d", cs.Count)
	}
	if cs.Mean != 4.2 {
		t.Errorf("expected mean 4.2, got %g", cs.Mean)
	}
	if cs.Std != 0 {
		t.Errorf("expected std 0, got %g", cs.Std)
	}
	if cs.Min != 4.2 || cs.Max != 4.2 {
		t.Errorf("expected min=max=4.2, got min=%g max=%g", cs.Min, cs.Max)
	}
}

func TestDescribeQuartiles(t *testing.T) {
	// Linear interpolation between closest ranks.
	cs := Describe("depth", []float64{1, 2, 3, 4})

	if cs.Q25 != 1.75 {
		t.Errorf("expected Q25 1.75, got %g", cs.Q25)
	}
	if cs.Median != 2.5 {
		t.Errorf("expected median 2.5, got %g", cs.Median)
	}
	if cs.Q75 != 3.25 {
		t.Errorf("expected Q75 3.25, got %g", cs.Q75)
	}
}

func TestDescribeIgnoresMissing(t *testing.T) {
	cs := Describe("magnitude", []float64{1.0, math.NaN(), 3.0, math.NaN()})

	if cs.Count != 2 {
		t.Errorf("expected count 2, got %d", cs.Count)
	}
	if cs.Mean != 2.0 {
		t.Errorf("expected mean 2.0, got %g", cs.Mean)
	}
}

func TestDescribeEmpty(t *testing.T) {
	cs := Describe("magnitude", nil)

	if cs.Count != 0 {
		t.Errorf("expected count 0, got %d", cs.Count)
	}
	// Statistics over zero rows are NaN, not an error.
	for _, v := range []float64{cs.Mean, cs.Std, cs.Min, cs.Q25, cs.Median, cs.Q75, cs.Max} {
		if !math.IsNaN(v) {
			t.Errorf("expected NaN statistic on empty input, got %g", v)
		}
	}
}

func TestDescribeSingleValueStd(t *testing.T) {
	cs := Describe("magnitude", []float64{5.0})

	if cs.Mean != 5.0 {
		t.Errorf("expected mean 5.0, got %g", cs.Mean)
	}
	// Sample std is undefined for one observation.
	if !math.IsNaN(cs.Std) {
		t.Errorf("expected NaN std for a single value, got %g", cs.Std)
	}
}

func TestCentral(t *testing.T) {
	ct := Central([]float64{5.0, 5.0, 6.0, 8.0})

	if math.Abs(ct.Mean-6.0) > 1e-12 {
		t.Errorf("expected mean 6.0, got %g", ct.Mean)
	}
	if ct.Median != 5.5 {
		t.Errorf("expected median 5.5, got %g", ct.Median)
	}
	if ct.Mode != 5.0 {
		t.Errorf("expected mode 5.0, got %g", ct.Mode)
	}
}

func TestCentralModeTieResolvesToSmallest(t *testing.T) {
	ct := Central([]float64{3.0, 1.0, 3.0, 1.0, 2.0})

	if ct.Mode != 1.0 {
		t.Errorf("expected mode 1.0 on tie, got %g", ct.Mode)
	}
}

func TestBuildReport(t *testing.T) {
	rs := &model.RecordSet{
		Source:  "test.csv",
		Columns: []string{"time", "magnitude", "depth"},
		Records: []model.Record{
			{Magnitude: 1.0, Depth: 5, Latitude: math.NaN(), Longitude: math.NaN()},
			{Magnitude: 2.0, Depth: 10, Latitude: math.NaN(), Longitude: math.NaN()},
			{Magnitude: 3.0, Depth: 15, Latitude: math.NaN(), Longitude: math.NaN()},
		},
	}

	rep := BuildReport(rs)

	if rep.Rows != 3 || rep.Cols != 3 {
		t.Errorf("expected shape (3, 3), got (%d, %d)", rep.Rows, rep.Cols)
	}
	if len(rep.Head) != 3 {
		t.Errorf("expected head of 3 rows, got %d", len(rep.Head))
	}
	// Only columns present in the header are described.
	if len(rep.Describe) != 2 {
		t.Fatalf("expected describe for magnitude and depth, got %d columns", len(rep.Describe))
	}
	if rep.Describe[0].Name != "magnitude" || rep.Describe[0].Mean != 2.0 {
		t.Errorf("expected magnitude mean 2.0, got %s=%g", rep.Describe[0].Name, rep.Describe[0].Mean)
	}
	if rep.Describe[1].Name != "depth" || rep.Describe[1].Mean != 10.0 {
		t.Errorf("expected depth mean 10.0, got %s=%g", rep.Describe[1].Name, rep.Describe[1].Mean)
	}
	if rep.Central.Mean != 2.0 {
		t.Errorf("expected central mean 2.0, got %g", rep.Central.Mean)
	}
}

func TestColumnStatsStat(t *testing.T) {
	cs := Describe("magnitude", []float64{1, 2, 3})

	if cs.Stat("count") != 3 {
		t.Errorf("expected count 3, got %g", cs.Stat("count"))
	}
	if cs.Stat("mean") != 2 {
		t.Errorf("expected mean 2, got %g", cs.Stat("mean"))
	}
	if cs.Stat("50%") != 2 {
		t.Errorf("expected median 2, got %g", cs.Stat("50%"))
	}
	if !math.IsNaN(cs.Stat("bogus")) {
		t.Error("expected NaN for unknown stat name")
	}
}
