package stats

import (
	"errors"
	"math"
	"testing"
)

func TestHistogramBinCountAndTotal(t *testing.T) {
	values := []float64{4.1, 4.5, 5.0, 5.2, 5.9, 6.3, 6.8, 7.0, 7.7, 8.2, 8.9}

	h, err := NewHistogram(values, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(h.Counts) != 10 {
		t.Errorf("expected 10 bins, got %d", len(h.Counts))
	}
	if h.Total() != len(values) {
		t.Errorf("expected total frequency %d, got %d", len(values), h.Total())
	}
}

func TestHistogramMaxValueInLastBin(t *testing.T) {
	h, err := NewHistogram([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 10)
	if err != nil {
		t.Fatal(err)
	}

	if h.Counts[9] != 1 {
		t.Errorf("expected the max value in the last bin, got counts %v", h.Counts)
	}
	if h.Total() != 10 {
		t.Errorf("expected total 10, got %d", h.Total())
	}
}

func TestHistogramSkipsMissing(t *testing.T) {
	h, err := NewHistogram([]float64{1, math.NaN(), 2, math.NaN(), 3}, 10)
	if err != nil {
		t.Fatal(err)
	}

	if h.Total() != 3 {
		t.Errorf("expected total 3 (NaN excluded), got %d", h.Total())
	}
}

func TestHistogramSingleDistinctValue(t *testing.T) {
	h, err := NewHistogram([]float64{5.0, 5.0, 5.0}, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(h.Counts) != 10 {
		t.Errorf("expected 10 bins, got %d", len(h.Counts))
	}
	if h.Total() != 3 {
		t.Errorf("expected total 3, got %d", h.Total())
	}
	if h.Min >= h.Max {
		t.Errorf("expected a widened range, got [%g, %g]", h.Min, h.Max)
	}
}

func TestHistogramNoValues(t *testing.T) {
	_, err := NewHistogram([]float64{math.NaN()}, 10)
	if !errors.Is(err, ErrNoValues) {
		t.Errorf("expected ErrNoValues, got %v", err)
	}
}
