package renderer

import (
	"image"
	"image/color"
	"sync"

	"github.com/linuxmatters/radplot/internal/config"
	"github.com/linuxmatters/radplot/internal/spectrum"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FigureSpec describes one spectrum plot.
type FigureSpec struct {
	Grid    *mat.Dense
	Display spectrum.Extent

	LogOmega     bool
	LogIntensity bool
	// VMax overrides the colour maximum when > 0.
	VMax float64

	Colormap *Colormap
	Shading  Shading

	LabelOmega    string
	LabelTheta    string
	LabelColorbar string
}

// Figure is a laid out mesh plot with its colorbar. Call Release when done.
type Figure struct {
	Stats spectrum.Stats
	Norm  Norm

	main     *plot.Plot
	colorbar *plot.Plot
	mesh     *Mesh

	width, height vg.Length
	dpi           float64
	background    color.Color
	raster        *image.NRGBA
}

var rasterPool = sync.Pool{
	New: func() interface{} {
		w, h := config.FigureWidth*config.DPI, config.FigureHeight*config.DPI
		return image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
	},
}

// acquireRaster returns a pooled buffer of at least w×h pixels.
func acquireRaster(w, h int) *image.NRGBA {
	img := rasterPool.Get().(*image.NRGBA)
	if img.Rect.Dx() < w || img.Rect.Dy() < h {
		rasterPool.Put(img)
		img = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

// NewFigure builds the plots for spec using the appearance from style (nil
// for defaults). The mesh raster buffer comes from a pool; defer Release
// right after a successful call.
func NewFigure(spec FigureSpec, style *config.Style) (*Figure, error) {
	st := spectrum.Summarize(spec.Grid)
	norm, err := NewNorm(st, spec.VMax, spec.LogIntensity)
	if err != nil {
		return nil, err
	}

	cmap := spec.Colormap
	if cmap == nil {
		cmap = Rainbow()
	}

	w, h := style.GetFigureSize()
	bgR, bgG, bgB := style.GetBackgroundColor()
	f := &Figure{
		Stats:      st,
		Norm:       norm,
		width:      vg.Length(w) * vg.Inch,
		height:     vg.Length(h) * vg.Inch,
		dpi:        style.GetDPI(),
		background: color.NRGBA{R: bgR, G: bgG, B: bgB, A: 255},
	}

	rows, cols := spec.Grid.Dims()
	xs := AxisCoords(spec.Display.OmegaMin, spec.Display.OmegaMax, cols, spec.LogOmega)
	ys := AxisCoords(spec.Display.ThetaMin, spec.Display.ThetaMax, rows, false)
	f.mesh = &Mesh{
		Grid:     spec.Grid,
		X0:       xs[0],
		X1:       xs[cols-1],
		Y0:       ys[0],
		Y1:       ys[rows-1],
		Norm:     norm,
		Colormap: cmap,
		Shading:  spec.Shading,
		DPI:      f.dpi,
	}
	// A single point per axis spans the whole display range.
	if cols == 1 {
		f.mesh.X1 = spec.Display.OmegaMax
	}
	if rows == 1 {
		f.mesh.Y1 = spec.Display.ThetaMax
	}

	f.main = f.newPlot(style)
	f.main.X.Label.Text = spec.LabelOmega
	f.main.Y.Label.Text = spec.LabelTheta
	if spec.LogOmega {
		f.main.X.Scale = plot.LogScale{}
		f.main.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	f.main.Y.Tick.Marker = evenTicks(spec.Display.ThetaMin, spec.Display.ThetaMax, config.ThetaTicks)
	f.main.Add(f.mesh)
	f.main.X.Min, f.main.X.Max = f.mesh.X0, f.mesh.X1
	f.main.Y.Min, f.main.Y.Max = f.mesh.Y0, f.mesh.Y1

	f.colorbar = f.newPlot(style)
	f.colorbar.HideX()
	f.colorbar.Y.Label.Text = spec.LabelColorbar
	_, _, cbSize := style.GetFontSizes()
	f.colorbar.Y.Label.TextStyle.Font.Size = vg.Points(cbSize)
	if spec.LogIntensity {
		f.colorbar.Y.Scale = plot.LogScale{}
		f.colorbar.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	} else {
		f.colorbar.Y.Tick.Marker = formatTicker{Ticker: plot.DefaultTicks{}, Format: config.ColorbarFormat}
		f.colorbar.Y.Tick.Label.Font.Size = vg.Points(config.ExponentFontSize)
	}
	f.colorbar.Add(&Colorbar{Norm: norm, Colormap: cmap})
	f.colorbar.Y.Min, f.colorbar.Y.Max = colorbarRange(norm)

	f.raster = acquireRaster(pixels(f.width, f.dpi), pixels(f.height, f.dpi))
	f.mesh.buf = f.raster

	return f, nil
}

// newPlot returns a plot with fonts, colours and text handler from style.
func (f *Figure) newPlot(style *config.Style) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = f.background

	tick, label, _ := style.GetFontSizes()
	txR, txG, txB := style.GetTextColor()
	fg := color.NRGBA{R: txR, G: txG, B: txB, A: 255}

	var handler text.Handler = text.Plain{Fonts: font.DefaultCache}
	if style.UseLatex() {
		handler = text.Latex{Fonts: font.DefaultCache}
	}
	p.Title.TextStyle.Handler = handler

	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Handler = handler
		a.Label.TextStyle.Font.Size = vg.Points(label)
		a.Label.TextStyle.Color = fg
		a.Label.Padding = vg.Points(config.TickPad)
		a.Tick.Label.Handler = handler
		a.Tick.Label.Font.Size = vg.Points(tick)
		a.Tick.Label.Color = fg
		a.Tick.LineStyle.Color = fg
		a.LineStyle.Color = fg
		a.Padding = 0
	}
	return p
}

// Size returns the figure size.
func (f *Figure) Size() (vg.Length, vg.Length) { return f.width, f.height }

// DPI returns the raster resolution used for the mesh and for Image.
func (f *Figure) DPI() float64 { return f.dpi }

// Draw lays out and draws the figure onto c: the mesh plot on the left and
// the colorbar in the right ColorbarWidth fraction.
func (f *Figure) Draw(c draw.Canvas) {
	split := vg.Length(1-config.ColorbarWidth) * (c.Max.X - c.Min.X)
	f.main.Draw(draw.Crop(c, 0, split-(c.Max.X-c.Min.X), 0, 0))
	f.colorbar.Draw(draw.Crop(c, split, 0, 0, 0))
}

// Image renders the figure to an RGBA image at the figure DPI.
func (f *Figure) Image() image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(f.width, f.height),
		vgimg.UseDPI(int(f.dpi)),
		vgimg.UseBackgroundColor(f.background),
	)
	f.Draw(draw.New(c))
	return c.Image()
}

// Release returns the raster buffer to the pool. The figure must not be
// drawn afterwards.
func (f *Figure) Release() {
	if f.raster != nil {
		f.mesh.buf = nil
		rasterPool.Put(f.raster)
		f.raster = nil
	}
}
