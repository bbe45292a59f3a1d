// Package encoder writes rendered figures to files.
package encoder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultFormat is the output format when none is given.
const DefaultFormat = "pdf"

// Formats lists the supported output formats.
var Formats = []string{"pdf", "svg", "eps", "png", "jpg", "tif"}

// Figure is anything that can draw itself onto a canvas of its own size.
type Figure interface {
	Size() (vg.Length, vg.Length)
	DPI() float64
	Draw(c draw.Canvas)
}

// Config holds output settings
type Config struct {
	OutputName string // file name without extension, may include directories
	Format     string // one of Formats
	Many       bool   // derive a name per input file
}

// Encoder writes one file per figure.
type Encoder struct {
	config Config
}

// New validates config and returns an Encoder.
func New(config Config) (*Encoder, error) {
	config.Format = strings.ToLower(strings.TrimPrefix(config.Format, "."))
	if config.Format == "" {
		config.Format = DefaultFormat
	}
	if config.Format == "jpeg" {
		config.Format = "jpg"
	}
	if config.Format == "tiff" {
		config.Format = "tif"
	}
	if !supported(config.Format) {
		return nil, fmt.Errorf("unsupported output format %q (want one of %s)", config.Format, strings.Join(Formats, ", "))
	}
	if config.OutputName == "" {
		return nil, fmt.Errorf("output name is empty")
	}

	return &Encoder{config: config}, nil
}

func supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Format returns the output format in use.
func (e *Encoder) Format() string {
	return e.config.Format
}

// Path returns the output file for inputPath.
func (e *Encoder) Path(inputPath string) string {
	return OutputPath(e.config.OutputName, inputPath, e.config.Many, e.config.Format)
}

// Encode draws fig and writes it to the file derived from inputPath,
// creating parent directories as needed. It returns the written path.
func (e *Encoder) Encode(fig Figure, inputPath string) (string, error) {
	path := e.Path(inputPath)

	c, err := e.canvas(fig)
	if err != nil {
		return "", err
	}
	fig.Draw(draw.New(c))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}

// canvas returns a canvas for the configured format. Raster formats use
// the figure DPI; vector formats come from gonum's format table.
func (e *Encoder) canvas(fig Figure) (vg.CanvasWriterTo, error) {
	w, h := fig.Size()

	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(fig.DPI())))
	}

	switch e.config.Format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	}

	c, err := draw.NewFormattedCanvas(w, h, e.config.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s canvas: %w", e.config.Format, err)
	}
	return c, nil
}
