package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestFitPreview(t *testing.T) {
	src := image.Rect(0, 0, 2160, 1350)

	testCases := []struct {
		name       string
		termWidth  int
		termHeight int
		want       PreviewConfig
	}{
		{name: "unknown terminal", want: DefaultPreviewConfig()},
		{name: "width bound", termWidth: 84, termHeight: 100, want: PreviewConfig{Width: 80, Height: 25}},
		{name: "height bound", termWidth: 300, termHeight: 30, want: PreviewConfig{Width: 64, Height: 20}},
		{name: "tiny terminal", termWidth: 10, termHeight: 12, want: PreviewConfig{Width: 6, Height: 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FitPreview(src, tc.termWidth, tc.termHeight, 10)
			if got != tc.want {
				t.Errorf("FitPreview(%d, %d) = %+v, want %+v", tc.termWidth, tc.termHeight, got, tc.want)
			}
		})
	}
}

func TestDownsampleFrame(t *testing.T) {
	// Left half red, right half blue.
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 100 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	cfg := PreviewConfig{Width: 20, Height: 5}
	preview := DownsampleFrame(img, cfg)

	if len(preview) != 10 {
		t.Fatalf("got %d pixel rows, want 10", len(preview))
	}
	for _, row := range preview {
		if len(row) != 20 {
			t.Fatalf("got %d pixel columns, want 20", len(row))
		}
	}

	if left := preview[5][0]; left.R < 200 || left.B > 50 {
		t.Errorf("left pixel = %v, want red", left)
	}
	if right := preview[5][19]; right.B < 200 || right.R > 50 {
		t.Errorf("right pixel = %v, want blue", right)
	}
}

func TestRenderPreview(t *testing.T) {
	if got := RenderPreview(nil); got != "" {
		t.Errorf("RenderPreview(nil) = %q, want empty", got)
	}

	preview := [][]color.RGBA{
		{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}},
		{{R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}},
		{{R: 13, G: 14, B: 15}, {R: 16, G: 17, B: 18}},
	}
	out := RenderPreview(preview)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// Border, two cell rows, border.
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "\x1b[38;2;1;2;3m\x1b[48;2;7;8;9m▀") {
		t.Error("first cell does not pair rows 0 and 1")
	}
	// An odd last row uses its own colour for both halves.
	if !strings.Contains(out, "\x1b[38;2;16;17;18m\x1b[48;2;16;17;18m▀") {
		t.Error("last cell does not repeat the unpaired row")
	}
	t.Logf("✓ preview rendered %d bytes", len(out))
}
