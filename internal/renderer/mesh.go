package renderer

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
)

// maxVectorCells caps the cells per axis drawn on canvases without image
// support.
const maxVectorCells = 256

// Shading selects how values between grid points are coloured.
type Shading int

const (
	// Gouraud interpolates bilinearly between the four surrounding points.
	Gouraud Shading = iota
	// Flat paints the area nearest to each point in that point's colour.
	Flat
)

func (s Shading) String() string {
	if s == Flat {
		return "flat"
	}
	return "gouraud"
}

// Mesh is a plot.Plotter drawing a grid as a raster image. Grid row i sits
// at the i-th θ coordinate and column j at the j-th ω coordinate; both run
// from the first to the last coordinate of the axis. Because ω coordinates
// are logspaced exactly when the ω axis is logarithmic, grid points are
// evenly spaced on screen either way and the raster is built in index
// space.
type Mesh struct {
	Grid     *mat.Dense
	X0, X1   float64 // first and last ω coordinate
	Y0, Y1   float64 // first and last θ coordinate
	Norm     Norm
	Colormap *Colormap
	Shading  Shading
	DPI      float64

	// buf, when large enough, backs the raster instead of a new image.
	buf *image.NRGBA
}

// DataRange implements plot.DataRanger.
func (m *Mesh) DataRange() (xmin, xmax, ymin, ymax float64) {
	return m.X0, m.X1, m.Y0, m.Y1
}

// Plot implements plot.Plotter.
func (m *Mesh) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	rect := vg.Rectangle{
		Min: vg.Point{X: trX(m.X0), Y: trY(m.Y0)},
		Max: vg.Point{X: trX(m.X1), Y: trY(m.Y1)},
	}

	w := pixels(rect.Max.X-rect.Min.X, m.DPI)
	h := pixels(rect.Max.Y-rect.Min.Y, m.DPI)

	if !drawsImages(c.Canvas) {
		m.fillCells(c, rect, min(w, maxVectorCells), min(h, maxVectorCells))
		return
	}
	c.DrawImage(rect, m.Rasterize(w, h))
}

// drawsImages reports whether a canvas implements DrawImage. EPS does not.
func drawsImages(c vg.Canvas) bool {
	_, eps := c.(*vgeps.Canvas)
	return !eps
}

// fillCells draws a w×h raster of the mesh as one filled rectangle per
// pixel. Transparent pixels are skipped.
func (m *Mesh) fillCells(c draw.Canvas, rect vg.Rectangle, w, h int) {
	img := m.Rasterize(w, h)
	dx := (rect.Max.X - rect.Min.X) / vg.Length(w)
	dy := (rect.Max.Y - rect.Min.Y) / vg.Length(h)

	for py := 0; py < h; py++ {
		// Image row 0 is the top of rect.
		y1 := rect.Max.Y - vg.Length(py)*dy
		y0 := y1 - dy
		for px := 0; px < w; px++ {
			clr := img.NRGBAAt(px, py)
			if clr.A == 0 {
				continue
			}
			x0 := rect.Min.X + vg.Length(px)*dx
			x1 := x0 + dx
			c.FillPolygon(clr, []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
		}
	}
}

func pixels(l vg.Length, dpi float64) int {
	n := int(math.Ceil(float64(l/vg.Inch) * dpi))
	if n < 1 {
		return 1
	}
	return n
}

// Rasterize renders the mesh into a w×h image. Row 0 of the image is the
// last θ coordinate.
func (m *Mesh) Rasterize(w, h int) *image.NRGBA {
	img := m.target(w, h)
	rows, cols := m.Grid.Dims()

	// Column weights are shared by every row.
	xs := make([]sample, w)
	for px := range xs {
		xs[px] = sampleAt((float64(px)+0.5)/float64(w), cols)
	}

	for py := 0; py < h; py++ {
		ys := sampleAt(1-(float64(py)+0.5)/float64(h), rows)
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+py)
		for px := 0; px < w; px++ {
			var v float64
			if m.Shading == Flat {
				v = m.Grid.At(ys.nearest(), xs[px].nearest())
			} else {
				v = m.bilinear(ys, xs[px])
			}
			c := m.Colormap.At(m.Norm.Normalize(v))
			setPix(img.Pix[off+4*px:], c)
		}
	}
	return img
}

func (m *Mesh) target(w, h int) *image.NRGBA {
	if m.buf != nil && m.buf.Rect.Dx() >= w && m.buf.Rect.Dy() >= h {
		return m.buf.SubImage(image.Rect(0, 0, w, h)).(*image.NRGBA)
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func (m *Mesh) bilinear(ys, xs sample) float64 {
	a := m.Grid.At(ys.i0, xs.i0)
	b := m.Grid.At(ys.i0, xs.i1)
	c := m.Grid.At(ys.i1, xs.i0)
	d := m.Grid.At(ys.i1, xs.i1)
	top := a + xs.frac*(b-a)
	bottom := c + xs.frac*(d-c)
	return top + ys.frac*(bottom-top)
}

// sample locates a fractional grid index between points i0 and i1.
type sample struct {
	i0, i1 int
	frac   float64
}

func sampleAt(u float64, n int) sample {
	f := u * float64(n-1)
	i0 := int(f)
	if i0 > n-1 {
		i0 = n - 1
	}
	i1 := i0 + 1
	if i1 > n-1 {
		i1 = n - 1
	}
	return sample{i0: i0, i1: i1, frac: f - float64(i0)}
}

func (s sample) nearest() int {
	if s.frac >= 0.5 {
		return s.i1
	}
	return s.i0
}

func setPix(p []uint8, c color.NRGBA) {
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}
