package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hawkarabdulhaq/quakescope/internal/chart"
	"github.com/hawkarabdulhaq/quakescope/internal/dataset"
	"github.com/hawkarabdulhaq/quakescope/internal/model"
	"github.com/hawkarabdulhaq/quakescope/internal/output"
	"github.com/hawkarabdulhaq/quakescope/internal/stats"
	"github.com/hawkarabdulhaq/quakescope/internal/watcher"
)

var overviewCmd = &cobra.Command{
	Use:   "overview [datasets...]",
	Short: "Print summary statistics and render charts for earthquake CSVs",
	Long: `Load one or more earthquake CSV files (or glob patterns), print the
dataset shape, the first rows, and per-column summary statistics, and
render a magnitude histogram plus a magnitude-vs-depth scatter chart.

Examples:
  quakescope overview earthquakes.csv
  quakescope overview "data/**/*.csv" --output json
  quakescope overview earthquakes.csv --charts-dir /tmp/charts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	var paths []string
	for _, pattern := range args {
		matches, err := watcher.ExpandGlob(pattern)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched the given patterns: %v", args)
	}

	renderer := newRenderer()

	for _, path := range paths {
		rep, _, err := generateOverview(path, chartsDirSetting(), chartPrefix(path))
		if err != nil {
			return err
		}
		if err := renderer.Render(rep); err != nil {
			return fmt.Errorf("render report for %s: %w", path, err)
		}
	}
	return nil
}

// newRenderer picks the report renderer from the --output flag.
func newRenderer() output.Renderer {
	switch strings.ToLower(outputFmt) {
	case "json":
		return output.NewJSONRenderer(os.Stdout)
	default:
		return output.NewTextRenderer(os.Stdout)
	}
}

// chartPrefix derives per-dataset chart file prefixes so multiple inputs
// don't overwrite each other's images.
func chartPrefix(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_"
}

// generateOverview runs the full pipeline for one dataset: load, normalize
// the time column, compute the report, and render both charts.
func generateOverview(path, chartsDir, prefix string) (stats.Report, *model.RecordSet, error) {
	rs, err := dataset.Load(path)
	if err != nil {
		return stats.Report{}, nil, err
	}

	if rs.HasColumn("time") {
		if err := dataset.NormalizeTime(rs); err != nil {
			return stats.Report{}, nil, err
		}
	}

	rep := stats.BuildReport(rs)
	rep.Charts = renderCharts(rs, chartsDir, prefix)
	return rep, rs, nil
}

// renderCharts writes the histogram and scatter PNGs, returning the paths
// that were actually produced. Chart-specific gaps (no depth column, no
// plottable values) are notices, not errors.
func renderCharts(rs *model.RecordSet, chartsDir, prefix string) []string {
	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot create charts dir %s: %v\n", chartsDir, err)
		return nil
	}

	var charts []string

	histPath := filepath.Join(chartsDir, prefix+"magnitude_histogram.png")
	switch err := chart.MagnitudeHistogram(rs, histPath); {
	case err == nil:
		charts = append(charts, histPath)
	case errors.Is(err, stats.ErrNoValues):
		fmt.Fprintln(os.Stderr, "No magnitude values present—skipping histogram.")
	default:
		fmt.Fprintf(os.Stderr, "warning: histogram failed: %v\n", err)
	}

	if !rs.HasColumn("depth") {
		fmt.Fprintln(os.Stderr, "No 'depth' column found in CSV—skipping scatter plot.")
		return charts
	}

	scatterPath := filepath.Join(chartsDir, prefix+"magnitude_vs_depth.png")
	switch err := chart.MagnitudeDepthScatter(rs, scatterPath); {
	case err == nil:
		charts = append(charts, scatterPath)
	case errors.Is(err, stats.ErrNoValues):
		fmt.Fprintln(os.Stderr, "No rows with both magnitude and depth—skipping scatter plot.")
	default:
		fmt.Fprintf(os.Stderr, "warning: scatter plot failed: %v\n", err)
	}

	return charts
}
