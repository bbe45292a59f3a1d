package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Figure settings
const (
	FigureWidth  = 14.4 // inches
	FigureHeight = 9.0  // inches
	DPI          = 150  // Raster resolution for the mesh image and on-screen viewers
)

// Font sizes in points
const (
	TickFontSize          = 28
	LabelFontSize         = 39
	ColorbarLabelFontSize = 45
	ExponentFontSize      = 18 // Colorbar tick labels in exponent notation
	TickPad               = 10 // Distance between ticks and tick labels
)

// Colour scale settings
const (
	ColormapEntries = 256
	ThetaTicks      = 5    // Evenly spaced y-axis ticks over the display θ range
	ColorbarWidth   = 0.22 // Fraction of the figure width used by the colorbar panel
	ColorbarFormat  = "%2.2e"
)

// CLI defaults, matching the simulation's radiation plugin output
const (
	DefaultOutputName    = "SpectraOutput"
	DefaultDataExtent    = "0,1,0,90"
	DefaultLabelOmega    = "ω/ω₀"
	DefaultLabelTheta    = "θ/°"
	DefaultLabelColorbar = "d²I/dω dΩ / Js"
)

// Appearance defaults for the runtime style
const (
	BackgroundColorR = 255
	BackgroundColorG = 255
	BackgroundColorB = 255

	TextColorR = 0
	TextColorG = 0
	TextColorB = 0
)

// Style holds user overrides loaded from a style file. Nil fields fall back
// to the package constants, so a nil *Style is a valid "all defaults" style.
type Style struct {
	FigureWidth           *float64 `yaml:"figure_width,omitempty" mapstructure:"figure_width"`
	FigureHeight          *float64 `yaml:"figure_height,omitempty" mapstructure:"figure_height"`
	DPI                   *float64 `yaml:"dpi,omitempty" mapstructure:"dpi"`
	TickFontSize          *float64 `yaml:"tick_font_size,omitempty" mapstructure:"tick_font_size"`
	LabelFontSize         *float64 `yaml:"label_font_size,omitempty" mapstructure:"label_font_size"`
	ColorbarLabelFontSize *float64 `yaml:"colorbar_label_font_size,omitempty" mapstructure:"colorbar_label_font_size"`
	BackgroundColor       *string  `yaml:"background_color,omitempty" mapstructure:"background_color"`
	TextColor             *string  `yaml:"text_color,omitempty" mapstructure:"text_color"`
	Latex                 *bool    `yaml:"latex,omitempty" mapstructure:"latex"`
}

// ParseHexColor parses "RRGGBB" or "#RRGGBB" into its components.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// GetFigureSize returns the figure width and height in inches.
func (s *Style) GetFigureSize() (float64, float64) {
	w, h := FigureWidth, FigureHeight
	if s == nil {
		return w, h
	}
	if s.FigureWidth != nil && *s.FigureWidth > 0 {
		w = *s.FigureWidth
	}
	if s.FigureHeight != nil && *s.FigureHeight > 0 {
		h = *s.FigureHeight
	}
	return w, h
}

// GetDPI returns the raster resolution in dots per inch.
func (s *Style) GetDPI() float64 {
	if s == nil || s.DPI == nil || *s.DPI <= 0 {
		return DPI
	}
	return *s.DPI
}

// GetFontSizes returns the tick, axis label and colorbar label sizes in points.
func (s *Style) GetFontSizes() (tick, label, colorbar float64) {
	tick, label, colorbar = TickFontSize, LabelFontSize, ColorbarLabelFontSize
	if s == nil {
		return
	}
	if s.TickFontSize != nil && *s.TickFontSize > 0 {
		tick = *s.TickFontSize
	}
	if s.LabelFontSize != nil && *s.LabelFontSize > 0 {
		label = *s.LabelFontSize
	}
	if s.ColorbarLabelFontSize != nil && *s.ColorbarLabelFontSize > 0 {
		colorbar = *s.ColorbarLabelFontSize
	}
	return
}

// GetBackgroundColor returns the figure background colour. An unparsable
// override falls back to the default.
func (s *Style) GetBackgroundColor() (uint8, uint8, uint8) {
	if s != nil && s.BackgroundColor != nil && *s.BackgroundColor != "" {
		if r, g, b, err := ParseHexColor(*s.BackgroundColor); err == nil {
			return r, g, b
		}
	}
	return BackgroundColorR, BackgroundColorG, BackgroundColorB
}

// GetTextColor returns the colour used for labels, ticks and axis lines.
func (s *Style) GetTextColor() (uint8, uint8, uint8) {
	if s != nil && s.TextColor != nil && *s.TextColor != "" {
		if r, g, b, err := ParseHexColor(*s.TextColor); err == nil {
			return r, g, b
		}
	}
	return TextColorR, TextColorG, TextColorB
}

// UseLatex reports whether labels are rendered with the LaTeX text handler.
func (s *Style) UseLatex() bool {
	return s != nil && s.Latex != nil && *s.Latex
}

// Validate rejects overrides that the getters would otherwise silently ignore.
func (s *Style) Validate() error {
	if s == nil {
		return nil
	}
	for name, v := range map[string]*string{
		"background_color": s.BackgroundColor,
		"text_color":       s.TextColor,
	} {
		if v == nil || *v == "" {
			continue
		}
		if _, _, _, err := ParseHexColor(*v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for name, v := range map[string]*float64{
		"figure_width":             s.FigureWidth,
		"figure_height":            s.FigureHeight,
		"dpi":                      s.DPI,
		"tick_font_size":           s.TickFontSize,
		"label_font_size":          s.LabelFontSize,
		"colorbar_label_font_size": s.ColorbarLabelFontSize,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %g", name, *v)
		}
	}
	return nil
}

// Resolved returns a copy of the style with every field populated from
// the effective values.
func (s *Style) Resolved() *Style {
	w, h := s.GetFigureSize()
	dpi := s.GetDPI()
	tick, label, colorbar := s.GetFontSizes()
	bgR, bgG, bgB := s.GetBackgroundColor()
	txR, txG, txB := s.GetTextColor()
	bg := fmt.Sprintf("#%02X%02X%02X", bgR, bgG, bgB)
	tx := fmt.Sprintf("#%02X%02X%02X", txR, txG, txB)
	latex := s.UseLatex()

	return &Style{
		FigureWidth:           &w,
		FigureHeight:          &h,
		DPI:                   &dpi,
		TickFontSize:          &tick,
		LabelFontSize:         &label,
		ColorbarLabelFontSize: &colorbar,
		BackgroundColor:       &bg,
		TextColor:             &tx,
		Latex:                 &latex,
	}
}
