package report

import (
	"fmt"
	"io"
	"strings"
)

// DefaultBins is the histogram resolution used by NewTextVisualizer when
// bins <= 0.
const DefaultBins = 20

const barWidth = 40

// TextVisualizer writes a summary and a histogram of a series to w.
type TextVisualizer struct {
	w    io.Writer
	bins int
}

// NewTextVisualizer returns a visualizer writing to w. Panics on nil w.
func NewTextVisualizer(w io.Writer, bins int) *TextVisualizer {
	if w == nil {
		panic("report: NewTextVisualizer(nil writer)")
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	return &TextVisualizer{w: w, bins: bins}
}

// Title returns the chart title for a series of feature, e.g.
// "Distribution of IRR for cash values". The feature-sum series carries no
// prefix.
func Title(series, feature string) string {
	prefix := ""
	if series == "IRR" || series == "NPV" {
		prefix = series + " for "
	}
	return "Distribution of " + prefix + feature + " values"
}

// Render implements simulation.Visualizer.
func (v *TextVisualizer) Render(series, feature string, values []float64) error {
	sum, err := Summarize(values)
	if err != nil {
		return fmt.Errorf("Render(%s): %w", series, err)
	}
	h, err := NewHistogram(values, v.bins)
	if err != nil {
		return fmt.Errorf("Render(%s): %w", series, err)
	}

	var sb strings.Builder
	sb.WriteString(Title(series, feature))
	sb.WriteByte('\n')
	sb.WriteString(sum.String())
	sb.WriteByte('\n')

	peak := 0.0
	for _, c := range h.Counts {
		peak = max(peak, c)
	}
	for k, c := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = int(c / peak * barWidth)
		}
		fmt.Fprintf(&sb, "[%s, %s) %6d %6.2f%% %s\n",
			FormatMoney(h.Edges[k], 2), FormatMoney(h.Edges[k+1], 2),
			int(c), 100*h.Cumulative[k], strings.Repeat("#", bar))
	}

	_, err = io.WriteString(v.w, sb.String())
	return err
}
