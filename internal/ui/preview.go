package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// PreviewConfig holds configuration for the figure preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells; each cell shows two pixel rows
}

// DefaultPreviewConfig returns a preview size matching the default figure
// aspect ratio of 1.6:1 (72 columns by 45 half-block rows).
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  72,
		Height: 23,
	}
}

// FitPreview returns the largest preview that fits a terminal of the given
// size, keeping the aspect ratio of a src image. Reserve is the number of
// terminal rows needed for other content.
func FitPreview(src image.Rectangle, termWidth, termHeight, reserve int) PreviewConfig {
	cfg := DefaultPreviewConfig()
	if termWidth <= 0 || termHeight <= 0 || src.Dx() == 0 || src.Dy() == 0 {
		return cfg
	}

	w := termWidth - 4
	h := termHeight - reserve
	if w < 8 || h < 4 {
		return PreviewConfig{Width: max(w, 1), Height: max(h, 1)}
	}

	// Pixel rows are 2 per cell, so a cell pair is square.
	aspect := float64(src.Dx()) / float64(src.Dy())
	if rows := int(float64(w) / aspect / 2); rows <= h {
		return PreviewConfig{Width: w, Height: max(rows, 1)}
	}
	return PreviewConfig{Width: max(int(float64(h)*2*aspect), 1), Height: h}
}

// DownsampleFrame scales a rendered figure to preview size. Each terminal
// cell covers two vertically stacked pixels.
func DownsampleFrame(frame image.Image, config PreviewConfig) [][]color.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	preview := make([][]color.RGBA, dst.Rect.Dy())
	for y := range preview {
		preview[y] = make([]color.RGBA, dst.Rect.Dx())
		for x := range preview[y] {
			preview[y][x] = dst.RGBAAt(x, y)
		}
	}
	return preview
}

// RenderPreview converts a pixel grid to a string using ANSI 24-bit colour:
// the upper half block takes the top pixel as foreground and the bottom
// pixel as background.
func RenderPreview(preview [][]color.RGBA) string {
	if len(preview) == 0 {
		return ""
	}

	var s strings.Builder
	width := len(preview[0])

	s.WriteString("  ┌" + strings.Repeat("─", width) + "┐\n")
	for y := 0; y < len(preview); y += 2 {
		s.WriteString("  │")
		for x, top := range preview[y] {
			bottom := top
			if y+1 < len(preview) {
				bottom = preview[y+1][x]
			}
			fmt.Fprintf(&s, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		s.WriteString("│\n")
	}
	s.WriteString("  └" + strings.Repeat("─", width) + "┘\n")

	return s.String()
}
