package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/radplot/internal/cli"
	"github.com/linuxmatters/radplot/internal/config"
	"github.com/linuxmatters/radplot/internal/encoder"
	"github.com/linuxmatters/radplot/internal/renderer"
	"github.com/linuxmatters/radplot/internal/spectrum"
	"github.com/mattn/go-isatty"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Inputs []string `arg:"" name:"input" help:"Spectrum files: whitespace separated rows of θ, columns of ω" type:"existingfile" optional:""`

	Pdf    bool   `help:"Write plots to files instead of showing them" group:"Output"`
	Output string `short:"o" help:"Output file name without extension" default:"${output}" group:"Output"`
	Format string `help:"Output file format: pdf, svg, eps, png, jpg or tif (implies --pdf)" group:"Output"`

	DataExtent    []float64 `short:"d" name:"data-extent" help:"Physical range of the data: ωmin,ωmax,θmin,θmax" default:"${extent}" group:"Data"`
	DisplayExtent []float64 `short:"z" name:"display-extent" help:"Range to plot, inside the data extent (default: data extent)" group:"Data"`
	LogOmega      bool      `name:"log-omega" help:"Logarithmic ω axis" group:"Data"`
	LogInt        bool      `name:"log-int" help:"Logarithmic colour scale" group:"Appearance"`

	LabelOmega    string `short:"x" name:"label-omega" help:"ω axis label" default:"${labelOmega}" group:"Appearance"`
	LabelTheta    string `short:"y" name:"label-theta" help:"θ axis label" default:"${labelTheta}" group:"Appearance"`
	LabelColorbar string `name:"label-colorbar" help:"Colorbar label" default:"${labelColorbar}" group:"Appearance"`

	Vmax         float64   `help:"Colour scale maximum (default: data maximum)" default:"-1" group:"Appearance"`
	DataMax      float64   `name:"data-max" help:"Clip values above this before smoothing (-1: off)" default:"-1" group:"Data"`
	Smooth       []float64 `help:"Gaussian smoothing widths in cells: σω,σθ" group:"Data"`
	SmoothMethod string    `name:"smooth-method" help:"Smoothing implementation" enum:"separable,fft" default:"separable" group:"Data"`
	Split        []int     `help:"Plot only rows first,last of the grid" group:"Data"`
	Bw           bool      `help:"Black and white colormap" group:"Appearance"`
	Nearest      bool      `help:"Flat shading instead of interpolated" group:"Appearance"`

	Viewer     string `help:"How plots are shown without --pdf" enum:"window,terminal" default:"window" group:"Output"`
	Style      string `help:"Style file (default: radplot.yaml in . or the config directory)" type:"existingfile" group:"Appearance"`
	PrintStyle bool   `name:"print-style" help:"Print the effective style as YAML and exit"`
	Summary    bool   `help:"Print statistics and the θ-integrated spectrum per file"`
	NoPreview  bool   `name:"no-preview" help:"Disable figure preview in the progress display"`
	Quiet      bool   `short:"q" help:"Plain progress output"`
	Version    bool   `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("radplot"),
		kong.Description("Plot far-field radiation spectra over frequency and observation angle."),
		kong.Vars{
			"version":       version,
			"output":        config.DefaultOutputName,
			"extent":        config.DefaultDataExtent,
			"labelOmega":    config.DefaultLabelOmega,
			"labelTheta":    config.DefaultLabelTheta,
			"labelColorbar": config.DefaultLabelColorbar,
		},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	style, err := resolveStyle()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if CLI.PrintStyle {
		data, err := config.MarshalStyle(style)
		if err != nil {
			cli.PrintError(fmt.Sprintf("encoding style: %v", err))
			os.Exit(1)
		}
		os.Stdout.Write(data)
		os.Exit(0)
	}

	if len(CLI.Inputs) == 0 {
		cli.PrintError("at least one <input> is required")
		os.Exit(1)
	}

	// Option errors are reported before any file is read.
	opts, err := buildOptions()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	_ = ctx // Kong context available for future use

	pl := &plotter{
		opts:    opts,
		spec:    figureSpec(opts),
		style:   style,
		summary: CLI.Summary,
		quiet:   CLI.Quiet,
		out:     os.Stdout,
	}

	switch {
	case CLI.Pdf || CLI.Format != "":
		enc, err := encoder.New(encoder.Config{
			OutputName: CLI.Output,
			Format:     CLI.Format,
			Many:       len(CLI.Inputs) > 1,
		})
		if err != nil {
			cli.PrintError(err.Error())
			os.Exit(1)
		}
		interactive := !CLI.Quiet && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
		if interactive {
			err = pl.saveInteractive(enc, CLI.Inputs, CLI.NoPreview)
		} else {
			err = pl.savePlain(enc, CLI.Inputs)
		}
		exitOn(err)

	case CLI.Viewer == "terminal":
		exitOn(pl.showTerminal(CLI.Inputs))

	default:
		exitOn(pl.showWindow(CLI.Inputs))
	}
}

func exitOn(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, errCancelled) {
		cli.PrintError(err.Error())
	}
	os.Exit(1)
}

// resolveStyle loads --style, or a discovered style file, or nothing.
func resolveStyle() (*config.Style, error) {
	if CLI.Style != "" {
		return config.LoadStyle(CLI.Style)
	}

	style, path, err := config.Discover(config.SearchPaths()...)
	if err != nil {
		return nil, err
	}
	if path != "" && !CLI.Quiet && !CLI.PrintStyle {
		cli.PrintInfo("Style", path)
	}
	return style, nil
}

// buildOptions converts flags to processing options and validates them.
func buildOptions() (spectrum.Options, error) {
	opts := spectrum.DefaultOptions()

	data, err := spectrum.ExtentFromSlice(CLI.DataExtent)
	if err != nil {
		return opts, fmt.Errorf("--data-extent: %w", err)
	}
	opts.Data, opts.Display = data, data

	if len(CLI.DisplayExtent) > 0 {
		if opts.Display, err = spectrum.ExtentFromSlice(CLI.DisplayExtent); err != nil {
			return opts, fmt.Errorf("--display-extent: %w", err)
		}
	}

	if len(CLI.Split) > 0 {
		if opts.Split, err = spectrum.AngleRangeFromSlice(CLI.Split); err != nil {
			return opts, fmt.Errorf("--split: %w", err)
		}
	}

	switch len(CLI.Smooth) {
	case 0:
	case 2:
		opts.SigmaOmega, opts.SigmaTheta = CLI.Smooth[0], CLI.Smooth[1]
	default:
		return opts, fmt.Errorf("--smooth: want 2 values σω,σθ, got %d", len(CLI.Smooth))
	}

	if opts.Method, err = spectrum.ParseMethod(CLI.SmoothMethod); err != nil {
		return opts, err
	}

	opts.LogOmega = CLI.LogOmega
	opts.DataMax = CLI.DataMax

	return opts, opts.Validate()
}

// figureSpec is the per-run part of every figure.
func figureSpec(opts spectrum.Options) renderer.FigureSpec {
	spec := renderer.FigureSpec{
		LogOmega:      opts.LogOmega,
		LogIntensity:  CLI.LogInt,
		VMax:          CLI.Vmax,
		Colormap:      renderer.Rainbow(),
		Shading:       renderer.Gouraud,
		LabelOmega:    CLI.LabelOmega,
		LabelTheta:    CLI.LabelTheta,
		LabelColorbar: CLI.LabelColorbar,
	}
	if CLI.Bw {
		spec.Colormap = renderer.BlackWhite()
	}
	if CLI.Nearest {
		spec.Shading = renderer.Flat
	}
	return spec
}
