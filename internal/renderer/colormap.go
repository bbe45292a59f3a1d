// Package renderer draws spectrum grids as pseudocolour meshes with a
// colorbar using gonum/plot. A Figure can be written to any vg canvas, so
// the same drawing code serves PDF/SVG/EPS files, raster files and the
// on-screen viewers.
package renderer

import (
	"image/color"
	"math"

	"github.com/linuxmatters/radplot/internal/config"
	"gonum.org/v1/plot/palette"
)

// Segment is one breakpoint of a colour channel: at position X the channel
// jumps from Below (approaching from the left) to Above.
type Segment struct {
	X, Below, Above float64
}

// Colormap is a lookup table built from per-channel piecewise linear
// segments.
type Colormap struct {
	Name string
	lut  []color.NRGBA
}

// NewColormap builds an n-entry lookup table. Each channel must start at
// X = 0 and end at X = 1 with increasing X in between.
func NewColormap(name string, red, green, blue []Segment, n int) *Colormap {
	r, g, b := channelLUT(red, n), channelLUT(green, n), channelLUT(blue, n)
	lut := make([]color.NRGBA, n)
	for i := range lut {
		lut[i] = color.NRGBA{R: to8(r[i]), G: to8(g[i]), B: to8(b[i]), A: 255}
	}
	return &Colormap{Name: name, lut: lut}
}

// channelLUT samples one channel at n evenly spaced positions. Between
// breakpoints i and i+1 the value runs linearly from Above(i) to Below(i+1).
func channelLUT(segs []Segment, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = segs[len(segs)-1].Below
		return out
	}

	out[0] = segs[0].Above
	out[n-1] = segs[len(segs)-1].Below

	k := 1
	for i := 1; i < n-1; i++ {
		x := float64(i) / float64(n-1)
		for k < len(segs)-1 && segs[k].X < x {
			k++
		}
		lo, hi := segs[k-1], segs[k]
		d := (x - lo.X) / (hi.X - lo.X)
		out[i] = lo.Above + d*(hi.Below-lo.Above)
	}

	for i, v := range out {
		out[i] = math.Max(0, math.Min(1, v))
	}
	return out
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Len returns the number of table entries.
func (m *Colormap) Len() int { return len(m.lut) }

// At maps t in [0, 1] to a colour. Values outside the range take the end
// colours; NaN is transparent.
func (m *Colormap) At(t float64) color.NRGBA {
	if math.IsNaN(t) {
		return color.NRGBA{}
	}
	i := int(t * float64(len(m.lut)))
	if i < 0 {
		i = 0
	}
	if i >= len(m.lut) {
		i = len(m.lut) - 1
	}
	return m.lut[i]
}

// Palette returns n colours sampled evenly across the map.
func (m *Colormap) Palette(n int) palette.Palette {
	p := make(colors, n)
	for i := range p {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		p[i] = m.At(t)
	}
	return p
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// Rainbow is the default map: white at zero, then through blue, cyan,
// green, yellow and red to dark red.
func Rainbow() *Colormap {
	return NewColormap("rainbow",
		[]Segment{{0, 1, 1}, {0.03, 0, 0}, {0.35, 0, 0}, {0.66, 1, 1}, {0.89, 1, 1}, {1, 0.5, 0.5}},
		[]Segment{{0, 1, 1}, {0.03, 0, 0}, {0.125, 0, 0}, {0.375, 1, 1}, {0.64, 1, 1}, {0.91, 0, 0}, {1, 0, 0}},
		[]Segment{{0, 1, 1}, {0.03, 0.8, 0.8}, {0.11, 1, 1}, {0.34, 1, 1}, {0.65, 0, 0}, {1, 0, 0}},
		config.ColormapEntries,
	)
}

// BlackWhite runs from white through light grey to black.
func BlackWhite() *Colormap {
	ch := []Segment{{0, 1, 1}, {0.03, 0.7, 0.7}, {1, 0, 0}}
	return NewColormap("bw", ch, ch, ch, config.ColormapEntries)
}
