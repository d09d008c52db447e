// Package chart renders the overview charts as PNG images.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
	"github.com/hawkarabdulhaq/quakescope/internal/stats"
)

// Fixed visual style carried over from the original overview charts.
var (
	skyBlue     = color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	greenMarker = color.NRGBA{G: 128, A: 178} // green at 70% opacity
)

// Chart dimensions match the original 8x5 inch figures.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// MagnitudeHistogram renders the magnitude distribution as a 10-bin
// histogram with sky-blue bars and black edges. Returns stats.ErrNoValues
// when every magnitude is missing.
func MagnitudeHistogram(rs *model.RecordSet, path string) error {
	// Bin through the stats package first so an empty column is reported
	// before any drawing happens.
	if _, err := stats.NewHistogram(rs.Numeric("magnitude"), 10); err != nil {
		return err
	}

	var vals plotter.Values
	for _, v := range rs.Numeric("magnitude") {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}

	p := plot.New()
	p.Title.Text = "Earthquake Magnitude Distribution"
	p.X.Label.Text = "Magnitude"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(vals, 10)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = skyBlue
	hist.LineStyle.Color = color.Black
	hist.LineStyle.Width = vg.Points(1)
	p.Add(hist)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}
	return nil
}

// MagnitudeDepthScatter renders magnitude (x) against depth (y) with green
// markers at 70% opacity. Rows missing either value are excluded. Returns
// stats.ErrNoValues when no row has both.
func MagnitudeDepthScatter(rs *model.RecordSet, path string) error {
	pts := scatterPoints(rs)
	if len(pts) == 0 {
		return stats.ErrNoValues
	}

	p := plot.New()
	p.Title.Text = "Magnitude vs. Depth"
	p.X.Label.Text = "Magnitude"
	p.Y.Label.Text = "Depth (km)"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	sc.GlyphStyle.Color = greenMarker
	sc.GlyphStyle.Radius = vg.Points(3)
	p.Add(sc)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save scatter: %w", err)
	}
	return nil
}

// scatterPoints collects (magnitude, depth) pairs where both are present.
func scatterPoints(rs *model.RecordSet) plotter.XYs {
	var pts plotter.XYs
	for _, r := range rs.Records {
		if math.IsNaN(r.Magnitude) || math.IsNaN(r.Depth) {
			continue
		}
		pts = append(pts, plotter.XY{X: r.Magnitude, Y: r.Depth})
	}
	return pts
}
