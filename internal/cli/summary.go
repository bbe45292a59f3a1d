package cli

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/linuxmatters/radplot/internal/renderer"
	"github.com/linuxmatters/radplot/internal/spectrum"
)

// Summary graph size in terminal cells
const (
	summaryHeight = 10
	summaryWidth  = 72
)

// FormatSummary describes a processed grid: its shape, value range, the
// frequency with the most θ-integrated intensity, and a graph of that
// integrated spectrum.
func FormatSummary(path string, rows, cols int, st spectrum.Stats, display spectrum.Extent, logOmega bool) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(filepath.Base(path)))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Grid:     "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d×%d (θ×ω)", rows, cols)))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Range:    "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%.4g … %.4g", st.Min, st.Max)))
	b.WriteString("\n")

	if !math.IsNaN(st.MinPositive) && st.MinPositive != st.Min {
		b.WriteString(KeyStyle.Render("Min > 0:  "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.4g", st.MinPositive)))
		b.WriteString("\n")
	}

	if peak, ok := peakOmega(st.Profile, display, logOmega); ok {
		b.WriteString(KeyStyle.Render("Peak ω:   "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.4g", peak)))
		b.WriteString("\n")
	}

	if len(st.Profile) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(st.Profile,
			asciigraph.Height(summaryHeight),
			asciigraph.Width(min(summaryWidth, max(len(st.Profile), 16))),
			asciigraph.Caption("θ-integrated spectrum over ω"),
		))
		b.WriteString("\n")
	}

	return b.String()
}

// PrintSummary writes FormatSummary's output to w.
func PrintSummary(w io.Writer, path string, rows, cols int, st spectrum.Stats, display spectrum.Extent, logOmega bool) {
	fmt.Fprintln(w, FormatSummary(path, rows, cols, st, display, logOmega))
}

// peakOmega returns the ω coordinate of the largest profile entry.
func peakOmega(profile []float64, display spectrum.Extent, logOmega bool) (float64, bool) {
	if len(profile) == 0 {
		return 0, false
	}

	best := 0
	for i, v := range profile {
		if v > profile[best] {
			best = i
		}
	}
	if profile[best] <= 0 {
		return 0, false
	}

	omega := renderer.AxisCoords(display.OmegaMin, display.OmegaMax, len(profile), logOmega)
	return omega[best], true
}
