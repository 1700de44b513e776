package interact

import (
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/grapher/internal/plot"
)

// ImageWriter persists a finished frame. It must either write the whole
// image or report an error.
type ImageWriter interface {
	WriteImage(path string, fb *plot.Framebuffer) error
}

// ImageWriterFunc adapts a function to ImageWriter.
type ImageWriterFunc func(path string, fb *plot.Framebuffer) error

func (f ImageWriterFunc) WriteImage(path string, fb *plot.Framebuffer) error {
	return f(path, fb)
}

const QuitKey = 'k'

type Options struct {
	// Output is the image path overwritten on every redraw.
	Output string
	// Status receives one line per redraw. May be nil.
	Status io.Writer
	// PanStep is the pan distance in screen units; zero means
	// plot.DefaultPanStep.
	PanStep float64
}

// Controller owns the viewport of one session and redraws it after every
// key.
type Controller struct {
	view     plot.Viewport
	renderer *plot.Renderer
	images   ImageWriter
	opts     Options
	last     string
	frames   int
	frame    *plot.Framebuffer
}

func New(v plot.Viewport, r *plot.Renderer, images ImageWriter, opts Options) *Controller {
	if opts.PanStep <= 0 {
		opts.PanStep = plot.DefaultPanStep
	}
	v.Normalize()
	return &Controller{
		view:     v,
		renderer: r,
		images:   images,
		opts:     opts,
	}
}

// State returns a copy of the current viewport.
func (c *Controller) State() plot.Viewport {
	return c.view
}

// Restore replaces the viewport without redrawing.
func (c *Controller) Restore(v plot.Viewport) {
	v.Normalize()
	c.view = v
}

// Status is the most recent status line, empty before the first redraw.
func (c *Controller) Status() string {
	return c.last
}

// Frames counts successful redraws.
func (c *Controller) Frames() int {
	return c.frames
}

// Frame is the most recently persisted framebuffer, or nil before the
// first redraw. It is overwritten by the next redraw.
func (c *Controller) Frame() *plot.Framebuffer {
	return c.frame
}

// apply mutates the viewport for key and reports whether key quits.
func (c *Controller) apply(key rune) bool {
	step := c.opts.PanStep
	switch key {
	case 'z':
		c.view.ZoomIn()
	case 'x':
		c.view.ZoomOut()
	case 'w':
		c.view.Pan(0, 1, step)
	case 'a':
		c.view.Pan(-1, 0, step)
	case 's':
		c.view.Pan(0, -1, step)
	case 'd':
		c.view.Pan(1, 0, step)
	case 'e':
		c.view.ToggleAxis()
	case 'r':
		c.view.Reset()
	case QuitKey:
		return true
	}
	return false
}

// Handle processes one key. The quit key returns true without redrawing;
// every other key redraws.
func (c *Controller) Handle(key rune) (quit bool, err error) {
	if c.apply(key) {
		return true, nil
	}
	if err := c.Redraw(); err != nil {
		return false, &RedrawError{Key: key, View: c.view, Wrapped: err}
	}
	return false, nil
}

// Redraw renders the current viewport, writes the image and emits the
// status line. The status line is only emitted once the image is written.
func (c *Controller) Redraw() error {
	fb := c.renderer.Render(c.view)
	if err := c.images.WriteImage(c.opts.Output, fb); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	c.frames++
	c.frame = fb
	c.last = StatusLine(c.view)
	if c.opts.Status != nil {
		fmt.Fprintln(c.opts.Status, c.last)
	}
	return nil
}

// MaxReadErrors is the number of consecutive read failures Run tolerates.
const MaxReadErrors = 64

// Run reads keys until the quit key, end of input or a redraw failure.
// Read errors other than io.EOF are skipped, unless MaxReadErrors of them
// arrive in a row.
func (c *Controller) Run(keys KeyReader) error {
	failed := 0
	for {
		key, err := keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if failed++; failed >= MaxReadErrors {
				return fmt.Errorf("%w: %w", ErrInput, err)
			}
			continue
		}
		failed = 0
		quit, err := c.Handle(key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func StatusLine(v plot.Viewport) string {
	return fmt.Sprintf("ZOOM: %g\tCENTER: (%g, %g)\tAXIS ENABLED: %t", v.Zoom, v.Center.X, v.Center.Y, v.AxisEnabled)
}
