package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseHexColor_ValidInputs verifies that ParseHexColor correctly parses
// various valid hex colour formats, catching case sensitivity issues,
// prefix handling, and byte ordering bugs.
func TestParseHexColor_ValidInputs(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		wantR uint8
		wantG uint8
		wantB uint8
	}{
		{name: "FF0000 (uppercase red, no hash)", input: "FF0000", wantR: 255},
		{name: "ff0000 (lowercase red, no hash)", input: "ff0000", wantR: 255},
		{name: "#FF0000 (uppercase red, with hash)", input: "#FF0000", wantR: 255},
		{name: "Ff00fF (mixed case magenta)", input: "Ff00fF", wantR: 255, wantB: 255},
		{name: "00FF00 (green)", input: "00FF00", wantG: 255},
		{name: "0000FF (blue)", input: "0000FF", wantB: 255},
		{name: "000000 (black)", input: "000000"},
		{name: "FFFFFF (white)", input: "FFFFFF", wantR: 255, wantG: 255, wantB: 255},
		{name: "#B3B3B3 (colormap grey)", input: "#B3B3B3", wantR: 179, wantG: 179, wantB: 179},
		{name: "010203 (low values)", input: "010203", wantR: 1, wantG: 2, wantB: 3},
		{name: "FDFEFF (high values)", input: "FDFEFF", wantR: 253, wantG: 254, wantB: 255},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tc.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tc.input, err)
			}
			if r != tc.wantR || g != tc.wantG || b != tc.wantB {
				t.Errorf("ParseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tc.input, r, g, b, tc.wantR, tc.wantG, tc.wantB)
			}
		})
	}
}

// TestParseHexColor_InvalidInputs verifies that ParseHexColor correctly
// rejects malformed input with appropriate errors.
func TestParseHexColor_InvalidInputs(t *testing.T) {
	inputs := []string{
		"FFF",
		"#FFF",
		"FFFFFFF",
		"GGGGGG",
		"FF00GG",
		"",
		"#",
		"FF 000",
		"FF#000",
		"##FF0000",
		"FF0000\n",
		"+FFFFF",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, _, _, err := ParseHexColor(input); err == nil {
				t.Errorf("ParseHexColor(%q) expected error, got nil", input)
			}
		})
	}
}

// TestStyle_NilFields verifies that Get*() methods return defaults when the
// style or its fields are nil. This catches nil pointer dereferences in
// style access that could panic during rendering.
func TestStyle_NilFields(t *testing.T) {
	for _, s := range []*Style{nil, {}} {
		w, h := s.GetFigureSize()
		if w != FigureWidth || h != FigureHeight {
			t.Errorf("GetFigureSize() = (%g, %g), want (%g, %g)", w, h, FigureWidth, FigureHeight)
		}
		if dpi := s.GetDPI(); dpi != DPI {
			t.Errorf("GetDPI() = %g, want %d", dpi, DPI)
		}
		tick, label, cb := s.GetFontSizes()
		if tick != TickFontSize || label != LabelFontSize || cb != ColorbarLabelFontSize {
			t.Errorf("GetFontSizes() = (%g, %g, %g), want defaults", tick, label, cb)
		}
		r, g, b := s.GetBackgroundColor()
		if r != BackgroundColorR || g != BackgroundColorG || b != BackgroundColorB {
			t.Errorf("GetBackgroundColor() = (%d, %d, %d), want defaults", r, g, b)
		}
		r, g, b = s.GetTextColor()
		if r != TextColorR || g != TextColorG || b != TextColorB {
			t.Errorf("GetTextColor() = (%d, %d, %d), want defaults", r, g, b)
		}
		if s.UseLatex() {
			t.Error("UseLatex() = true, want false")
		}
		if err := s.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	}
}

// TestStyle_Overrides verifies that set fields win over the defaults and
// that invalid overrides fall back rather than panic.
func TestStyle_Overrides(t *testing.T) {
	s := &Style{
		FigureWidth:     ptrFloat(8),
		DPI:             ptrFloat(72),
		LabelFontSize:   ptrFloat(12),
		BackgroundColor: ptrString("#101820"),
		TextColor:       ptrString("not-a-colour"),
		Latex:           ptrBool(true),
	}

	w, h := s.GetFigureSize()
	if w != 8 || h != FigureHeight {
		t.Errorf("GetFigureSize() = (%g, %g), want (8, %g)", w, h, FigureHeight)
	}
	if dpi := s.GetDPI(); dpi != 72 {
		t.Errorf("GetDPI() = %g, want 72", dpi)
	}
	tick, label, _ := s.GetFontSizes()
	if tick != TickFontSize || label != 12 {
		t.Errorf("GetFontSizes() tick=%g label=%g, want %d and 12", tick, label, TickFontSize)
	}
	if r, g, b := s.GetBackgroundColor(); r != 0x10 || g != 0x18 || b != 0x20 {
		t.Errorf("GetBackgroundColor() = (%d, %d, %d), want (16, 24, 32)", r, g, b)
	}
	if r, g, b := s.GetTextColor(); r != TextColorR || g != TextColorG || b != TextColorB {
		t.Errorf("GetTextColor() = (%d, %d, %d), want defaults for invalid override", r, g, b)
	}
	if !s.UseLatex() {
		t.Error("UseLatex() = false, want true")
	}
	if err := s.Validate(); err == nil {
		t.Error("Validate() accepted an invalid text_color")
	}
}

func TestStyle_ValidateRejectsNonPositive(t *testing.T) {
	s := &Style{DPI: ptrFloat(0)}
	if err := s.Validate(); err == nil || !strings.Contains(err.Error(), "dpi") {
		t.Errorf("Validate() = %v, want dpi error", err)
	}
}

func TestLoadStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	content := "figure_width: 10\nlabel_font_size: 20\nbackground_color: \"#000000\"\nlatex: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}
	if w, _ := s.GetFigureSize(); w != 10 {
		t.Errorf("figure width = %g, want 10", w)
	}
	if _, label, _ := s.GetFontSizes(); label != 20 {
		t.Errorf("label size = %g, want 20", label)
	}
	if r, g, b := s.GetBackgroundColor(); r != 0 || g != 0 || b != 0 {
		t.Errorf("background = (%d, %d, %d), want black", r, g, b)
	}
	if !s.UseLatex() {
		t.Error("latex not enabled")
	}
}

func TestLoadStyle_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("figure_widht: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStyle(path); err == nil {
		t.Error("LoadStyle() accepted an unknown key")
	}
}

func TestLoadStyle_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle() error on empty file: %v", err)
	}
	if w, h := s.GetFigureSize(); w != FigureWidth || h != FigureHeight {
		t.Errorf("empty style figure size = (%g, %g), want defaults", w, h)
	}
}

func TestDiscover(t *testing.T) {
	empty := t.TempDir()
	s, used, err := Discover(empty)
	if err != nil {
		t.Fatalf("Discover() on empty dir: %v", err)
	}
	if s != nil || used != "" {
		t.Errorf("Discover() on empty dir = (%v, %q), want (nil, \"\")", s, used)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, StyleFileName+".yaml")
	if err := os.WriteFile(path, []byte("dpi: 96\ntick_font_size: 14\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, used, err = Discover(empty, dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if filepath.Clean(used) != filepath.Clean(path) {
		t.Errorf("Discover() used %q, want %q", used, path)
	}
	if dpi := s.GetDPI(); dpi != 96 {
		t.Errorf("discovered dpi = %g, want 96", dpi)
	}
	if tick, _, _ := s.GetFontSizes(); tick != 14 {
		t.Errorf("discovered tick size = %g, want 14", tick)
	}
}

func TestMarshalStyle(t *testing.T) {
	out, err := MarshalStyle(nil)
	if err != nil {
		t.Fatalf("MarshalStyle() error: %v", err)
	}

	text := string(out)
	for _, want := range []string{"figure_width: 14.4", "dpi: 150", "background_color:", "#FFFFFF", "latex: false"} {
		if !strings.Contains(text, want) {
			t.Errorf("MarshalStyle() output missing %q:\n%s", want, text)
		}
	}

	// Round trip through LoadStyle
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle() on dumped style: %v", err)
	}
	if w, h := s.GetFigureSize(); w != FigureWidth || h != FigureHeight {
		t.Errorf("round trip figure size = (%g, %g)", w, h)
	}
}

func ptrFloat(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

func ptrBool(v bool) *bool { return &v }
