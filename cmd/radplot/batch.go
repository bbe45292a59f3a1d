package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/radplot/internal/cli"
	"github.com/linuxmatters/radplot/internal/config"
	"github.com/linuxmatters/radplot/internal/encoder"
	"github.com/linuxmatters/radplot/internal/renderer"
	"github.com/linuxmatters/radplot/internal/spectrum"
	"github.com/linuxmatters/radplot/internal/ui"
	"github.com/linuxmatters/radplot/internal/ui/window"
)

var errCancelled = errors.New("cancelled")

// plotter turns input files into figures, one at a time. Plain progress
// lines and summaries go to out.
type plotter struct {
	opts    spectrum.Options
	spec    renderer.FigureSpec
	style   *config.Style
	summary bool
	quiet   bool
	out     io.Writer
}

// plotted is what is known about a file once its figure exists.
type plotted struct {
	path     string
	fig      *renderer.Figure
	rows     int
	cols     int
	display  spectrum.Extent
	logOmega bool
}

// plot loads and processes path and hands the figure to use. The figure is
// released when use returns.
func (pl *plotter) plot(path string, use func(p *plotted) error) error {
	g, err := spectrum.Load(path)
	if err != nil {
		return err
	}

	res, err := spectrum.Process(g, pl.opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	spec := pl.spec
	spec.Grid = res.Grid
	spec.Display = res.Display
	fig, err := renderer.NewFigure(spec, pl.style)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer fig.Release()

	rows, cols := res.Grid.Dims()
	return use(&plotted{
		path:     path,
		fig:      fig,
		rows:     rows,
		cols:     cols,
		display:  res.Display,
		logOmega: pl.opts.LogOmega,
	})
}

func (p *plotted) summary() string {
	return cli.FormatSummary(p.path, p.rows, p.cols, p.fig.Stats, p.display, p.logOmega)
}

func (p *plotted) printSummary(w io.Writer) {
	cli.PrintSummary(w, p.path, p.rows, p.cols, p.fig.Stats, p.display, p.logOmega)
}

// done reports a finished file by its base name.
func (pl *plotter) done(path string) {
	fmt.Fprintf(pl.out, "%s\t Done\n", filepath.Base(path))
}

func (p *plotted) stats() string {
	return fmt.Sprintf("%d×%d  min %.4g  max %.4g  colour %.4g … %.4g",
		p.rows, p.cols, p.fig.Stats.Min, p.fig.Stats.Max, p.fig.Norm.Min, p.fig.Norm.Max)
}

// savePlain writes every input with one line per file, then a batch
// summary unless quiet.
func (pl *plotter) savePlain(enc *encoder.Encoder, inputs []string) error {
	start := time.Now()
	var out string
	for _, path := range inputs {
		err := pl.plot(path, func(p *plotted) error {
			var err error
			if out, err = enc.Encode(p.fig, path); err != nil {
				return err
			}
			if pl.summary {
				p.printSummary(pl.out)
			}
			return nil
		})
		if err != nil {
			return err
		}
		pl.done(path)
	}

	if !pl.quiet && len(inputs) > 0 {
		if len(inputs) > 1 {
			out = filepath.Dir(out)
		}
		cli.PrintBatchSummary(pl.out, len(inputs), enc.Format(), out, time.Since(start))
	}
	return nil
}

// saveInteractive writes every input while a progress display runs. The
// files are processed by one worker goroutine in order.
func (pl *plotter) saveInteractive(enc *encoder.Encoder, inputs []string, noPreview bool) error {
	model := ui.NewModel(len(inputs), noPreview)
	p := tea.NewProgram(model)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var summaries []string
	workerDone := make(chan error, 1)

	go func() {
		start := time.Now()
		written := 0
		var err error

		for i, path := range inputs {
			if ctx.Err() != nil {
				break
			}
			p.Send(ui.FileStarted{Index: i, Total: len(inputs), Path: path})

			fileStart := time.Now()
			err = pl.plot(path, func(pp *plotted) error {
				out, err := enc.Encode(pp.fig, path)
				if err != nil {
					return err
				}
				if pl.summary {
					summaries = append(summaries, pp.summary())
				}

				done := ui.FileDone{
					Index:  i,
					Total:  len(inputs),
					Path:   path,
					Output: out,
					Shape:  [2]int{pp.rows, pp.cols},
					Max:    pp.fig.Stats.Max,
				}
				if !noPreview {
					done.Figure = pp.fig.Image()
				}
				done.Elapsed = time.Since(fileStart)
				p.Send(done)
				return nil
			})
			if err != nil {
				break
			}
			written++
		}

		p.Send(ui.BatchComplete{Files: written, Elapsed: time.Since(start), Err: err})
		workerDone <- err
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	cancel()
	err := <-workerDone

	if summary := model.CompletionSummary(); summary != "" {
		fmt.Fprintln(pl.out, summary)
	}
	for _, s := range summaries {
		fmt.Fprintln(pl.out, s)
	}

	if err != nil {
		return err
	}
	if model.Cancelled() {
		cli.PrintWarning(fmt.Sprintf("cancelled after %d of %d files", model.Finished(), len(inputs)))
		return errCancelled
	}
	return nil
}

// showTerminal shows each figure in the terminal, one after another.
func (pl *plotter) showTerminal(inputs []string) error {
	for i, path := range inputs {
		var quit bool
		err := pl.plot(path, func(p *plotted) error {
			var err error
			quit, err = ui.ShowTerminal(p.fig.Image(), ui.ViewerInfo{
				Title:   filepath.Base(path),
				Index:   i,
				Total:   len(inputs),
				Stats:   p.stats(),
				Profile: p.fig.Stats.Profile,
			})
			if err == nil && pl.summary {
				p.printSummary(pl.out)
			}
			return err
		})
		if err != nil {
			return err
		}
		pl.done(path)
		if quit {
			return nil
		}
	}
	return nil
}

// showWindow shows each figure in a desktop window. The window owns the
// main goroutine; files are processed by a worker that waits for each
// figure to be dismissed.
func (pl *plotter) showWindow(inputs []string) error {
	w, err := window.New()
	if err != nil {
		return err
	}

	workerDone := make(chan error, 1)
	go func() {
		defer w.Close()
		for _, path := range inputs {
			err := pl.plot(path, func(p *plotted) error {
				if pl.summary {
					p.printSummary(pl.out)
				}
				return w.Show(p.fig.Image(), filepath.Base(path))
			})
			if errors.Is(err, window.ErrClosed) {
				workerDone <- nil
				return
			}
			if err != nil {
				workerDone <- err
				return
			}
			pl.done(path)
		}
		workerDone <- nil
	}()

	if err := w.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return <-workerDone
}
