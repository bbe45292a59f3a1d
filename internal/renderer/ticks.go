package renderer

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// formatTicker relabels the major ticks of another ticker with a printf
// format. Minor ticks keep their empty labels.
type formatTicker struct {
	plot.Ticker
	Format string
}

func (t formatTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = fmt.Sprintf(t.Format, ticks[i].Value)
		}
	}
	return ticks
}

// evenTicks returns n labelled ticks spread evenly over [lo, hi].
func evenTicks(lo, hi float64, n int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i, v := range AxisCoords(lo, hi, n, false) {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 6, 64)}
	}
	return ticks
}

// AxisCoords returns n coordinates from lo to hi, evenly spaced or, with
// log set, evenly spaced in log10.
func AxisCoords(lo, hi float64, n int, log bool) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	if log {
		llo, lhi := math.Log10(lo), math.Log10(hi)
		for i := range out {
			out[i] = math.Pow(10, llo+float64(i)*(lhi-llo)/float64(n-1))
		}
		out[0], out[n-1] = lo, hi
		return out
	}
	for i := range out {
		out[i] = lo + float64(i)*(hi-lo)/float64(n-1)
	}
	out[n-1] = hi
	return out
}
