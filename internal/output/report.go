package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hawkarabdulhaq/quakescope/internal/stats"
)

// Renderer writes a dataset overview report to an output stream.
type Renderer interface {
	Render(rep stats.Report) error
}

// ---------------------------------------------------------------------------
// Text Renderer (styled terminal output)
// ---------------------------------------------------------------------------

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))  // cyan
	styleColumn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")) // yellow
	styleStat    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // gray
)

// TextRenderer prints the overview to the terminal as aligned tables.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes styled text to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(rep stats.Report) error {
	fmt.Fprintf(r.w, "Dataset Shape: (%d, %d)\n", rep.Rows, rep.Cols)

	fmt.Fprintf(r.w, "\n%s\n", styleHeading.Render("First 5 Rows:"))
	r.renderHead(rep)

	fmt.Fprintf(r.w, "\n%s\n", styleHeading.Render("Summary Statistics:"))
	r.renderDescribe(rep)

	fmt.Fprintf(r.w, "\nCentral tendency (magnitude): mean=%s  median=%s  mode=%s\n",
		formatValue(rep.Central.Mean), formatValue(rep.Central.Median), formatValue(rep.Central.Mode))

	for _, c := range rep.Charts {
		fmt.Fprintf(r.w, "Chart written: %s\n", c)
	}
	return nil
}

// renderHead prints the first rows as a table in original column order.
func (r *TextRenderer) renderHead(rep stats.Report) {
	widths := make([]int, len(rep.Columns))
	cells := make([][]string, len(rep.Head))
	for i, col := range rep.Columns {
		widths[i] = len(col)
	}
	for i, rec := range rep.Head {
		cells[i] = make([]string, len(rep.Columns))
		for j, col := range rep.Columns {
			v := rec.Cell(strings.ToLower(strings.TrimSpace(col)))
			cells[i][j] = v
			if len(v) > widths[j] {
				widths[j] = len(v)
			}
		}
	}

	var header strings.Builder
	for j, col := range rep.Columns {
		fmt.Fprintf(&header, "%-*s  ", widths[j], col)
	}
	fmt.Fprintln(r.w, styleColumn.Render(strings.TrimRight(header.String(), " ")))

	for _, row := range cells {
		var line strings.Builder
		for j, v := range row {
			fmt.Fprintf(&line, "%-*s  ", widths[j], v)
		}
		fmt.Fprintln(r.w, strings.TrimRight(line.String(), " "))
	}
}

// renderDescribe prints statistics as rows and numeric columns as columns,
// the layout the overview script produced.
func (r *TextRenderer) renderDescribe(rep stats.Report) {
	const statWidth = 5 // longest stat label is "count"

	widths := make([]int, len(rep.Describe))
	for j, cs := range rep.Describe {
		widths[j] = len(cs.Name)
		for _, stat := range stats.StatNames {
			if n := len(formatStat(stat, cs.Stat(stat))); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var header strings.Builder
	fmt.Fprintf(&header, "%-*s  ", statWidth, "")
	for j, cs := range rep.Describe {
		fmt.Fprintf(&header, "%*s  ", widths[j], cs.Name)
	}
	fmt.Fprintln(r.w, styleColumn.Render(strings.TrimRight(header.String(), " ")))

	for _, stat := range stats.StatNames {
		var line strings.Builder
		fmt.Fprintf(&line, "%s  ", styleStat.Render(fmt.Sprintf("%-*s", statWidth, stat)))
		for j, cs := range rep.Describe {
			fmt.Fprintf(&line, "%*s  ", widths[j], formatStat(stat, cs.Stat(stat)))
		}
		fmt.Fprintln(r.w, strings.TrimRight(line.String(), " "))
	}
}

// formatStat renders count as an integer and everything else to six
// decimals, NaN spelled out.
func formatStat(name string, v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if name == "count" {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the full report as a single JSON object.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(rep stats.Report) error {
	return r.enc.Encode(rep)
}
