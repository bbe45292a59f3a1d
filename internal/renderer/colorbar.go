package renderer

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Colorbar is a plot.Plotter drawing every colormap entry as a horizontal
// band at the values it represents, so it reads correctly against both a
// linear and a logarithmic Y axis.
type Colorbar struct {
	Norm     Norm
	Colormap *Colormap
}

// DataRange implements plot.DataRanger.
func (b *Colorbar) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, b.Norm.Min, b.Norm.Max
}

// Plot implements plot.Plotter.
func (b *Colorbar) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	left, right := trX(p.X.Min), trX(p.X.Max)

	// A single-valued scale has no extent of its own; fill the padded axis.
	n := b.Norm
	if n.Min == n.Max {
		n.Min, n.Max = p.Y.Min, p.Y.Max
	}

	entries := b.Colormap.Len()
	for i := 0; i < entries; i++ {
		y0 := trY(n.Value(float64(i) / float64(entries)))
		y1 := trY(n.Value(float64(i+1) / float64(entries)))
		c.FillPolygon(b.Colormap.lut[i], []vg.Point{
			{X: left, Y: y0}, {X: right, Y: y0},
			{X: right, Y: y1}, {X: left, Y: y1},
		})
	}
}

// colorbarRange returns the Y axis limits for the colorbar, widening a
// single-valued scale so the axis can be drawn.
func colorbarRange(n Norm) (float64, float64) {
	if n.Min != n.Max {
		return n.Min, n.Max
	}
	switch {
	case n.Log:
		return n.Min / 10, n.Max * 10
	case n.Min == 0:
		return -1, 1
	}
	d := math.Abs(n.Min) * 0.1
	return n.Min - d, n.Max + d
}
