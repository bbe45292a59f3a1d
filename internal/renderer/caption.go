package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// CaptionOffset is the distance of the caption from the top left corner.
const CaptionOffset = 12

// LoadCaptionFace returns a Go Regular face at size points for captions
// drawn on rendered figures.
func LoadCaptionFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}

	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// DrawCaption draws text in the top left corner of img on a translucent
// plate so it stays legible over any colormap.
func DrawCaption(img draw.Image, face font.Face, text string, fg color.Color) {
	if text == "" {
		return
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	bounds, _ := d.BoundString(text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	origin := img.Bounds().Min
	plate := image.Rect(0, 0, textWidth+CaptionOffset, textHeight+CaptionOffset).Add(origin).Add(image.Pt(CaptionOffset/2, CaptionOffset/2))
	draw.Draw(img, plate, image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 200}), image.Point{}, draw.Over)

	d.Dot = freetype.Pt(origin.X+CaptionOffset, origin.Y+CaptionOffset+(-bounds.Min.Y).Ceil())
	d.DrawString(text)
}

// ScaleToFit scales src to fit within w×h keeping its aspect ratio.
func ScaleToFit(src image.Image, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	sx := float64(w) / float64(b.Dx())
	sy := float64(h) / float64(b.Dy())
	s := sx
	if sy < s {
		s = sy
	}

	dw, dh := int(float64(b.Dx())*s), int(float64(b.Dy())*s)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	if dw == b.Dx() && dh == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return dst
}
