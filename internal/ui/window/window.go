// Package window shows rendered figures in a desktop window.
//
// Ebiten allows one game loop per process, so a single Window serves the
// whole batch: Run owns the main thread while a worker goroutine hands
// figures over with Show, one at a time.
package window

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/linuxmatters/radplot/internal/renderer"
	"golang.org/x/image/font"
)

// Initial window size in device-independent pixels.
const (
	Width  = 1280
	Height = 800
)

// ErrClosed is returned by Show once the window has gone away.
var ErrClosed = errors.New("window closed")

type request struct {
	img   *image.RGBA
	title string
	done  chan struct{}
}

// Window displays one figure at a time until it is dismissed with q, Esc,
// Space, Enter or the window's close button.
type Window struct {
	requests chan request
	stopped  chan struct{}
	face     font.Face

	pending *request // received before the game loop started
	current *request
	image   *ebiten.Image
}

// New returns a window that is not yet open.
func New() (*Window, error) {
	face, err := renderer.LoadCaptionFace(18)
	if err != nil {
		return nil, err
	}
	return &Window{
		requests: make(chan request),
		stopped:  make(chan struct{}),
		face:     face,
	}, nil
}

// Show displays img captioned with title and blocks until the user
// dismisses it. It is safe to call from any goroutine but Run's.
func (w *Window) Show(img image.Image, title string) error {
	rgba := renderer.ScaleToFit(img, Width, Height)
	renderer.DrawCaption(rgba, w.face, title, color.Black)

	req := request{img: rgba, title: title, done: make(chan struct{})}
	select {
	case w.requests <- req:
	case <-w.stopped:
		return ErrClosed
	}

	select {
	case <-req.done:
		return nil
	case <-w.stopped:
		return ErrClosed
	}
}

// Close tells Run to return once the current figure is dismissed.
func (w *Window) Close() {
	close(w.requests)
}

// Run opens the window on the first figure and runs the event loop until
// Close is called. It must be called from the main goroutine. If Close is
// called before any figure arrives the window never opens.
func (w *Window) Run() error {
	defer close(w.stopped)

	first, ok := <-w.requests
	if !ok {
		return nil
	}
	w.pending = &first
	ebiten.SetWindowTitle("radplot: " + first.title)

	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (w *Window) show(req *request) {
	w.current = req
	w.image = ebiten.NewImageFromImage(req.img)
	ebiten.SetWindowTitle("radplot: " + req.title)
}

func (w *Window) dismiss() {
	close(w.current.done)
	w.current = nil
	w.image.Deallocate()
	w.image = nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.current == nil && w.pending != nil {
		w.show(w.pending)
		w.pending = nil
	}
	if w.current == nil {
		select {
		case req, ok := <-w.requests:
			if !ok {
				return ebiten.Termination
			}
			w.show(&req)
		default:
		}
		return nil
	}

	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.dismiss()
	}
	return nil
}

// Draw implements ebiten.Game. The figure is scaled to fit and centred.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	if w.image == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := w.image.Bounds().Dx(), w.image.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}

	s := min(float64(sw)/float64(iw), float64(sh)/float64(ih))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(sw)-float64(iw)*s)/2, (float64(sh)-float64(ih)*s)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(w.image, op)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
