package render

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by Options.Validate.
var (
	ErrInvalidSize   = errors.New("invalid framebuffer size")
	ErrInvalidExtent = errors.New("invalid view frame extent")
	ErrInvalidBands  = errors.New("invalid band count")
)

// Options configures a Renderer.
type Options struct {
	Width      int     // Output width in pixels
	Height     int     // Output height in pixels
	Bands      int     // Horizontal bands per triangle fill
	HalfWidth  float64 // Camera view frame half width at unit distance
	HalfHeight float64 // Camera view frame half height at unit distance
	Background Color   // Color buffer clear color
}

// DefaultOptions returns the 1024x768, eight-band configuration.
func DefaultOptions() Options {
	return Options{
		Width:      1024,
		Height:     768,
		Bands:      DefaultBands,
		HalfWidth:  1,
		HalfHeight: 0.75,
		Background: RGB(30, 30, 40),
	}
}

// Validate checks that the options describe a usable renderer.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if !(o.HalfWidth > 0) || !(o.HalfHeight > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidExtent, o.HalfWidth, o.HalfHeight)
	}
	if o.Bands < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBands, o.Bands)
	}
	return nil
}

// NewCamera creates a camera with the options' view frame.
func (o Options) NewCamera() *Camera {
	return NewCamera(o.HalfWidth, o.HalfHeight)
}

// Face is a world-space triangle with its fill color.
type Face struct {
	Triangle Triangle
	Color    Color
}

// FrameStats describes one rendered frame.
type FrameStats struct {
	Submitted  int // Faces passed to RenderFrame
	Culled     int // Rejected by the visibility test
	Degenerate int // Zero-area after projection
	Drawn      int // Faces that reached the rasterizer
	Fragments  int
	Written    int
	Elapsed    time.Duration
}

// Renderer owns the framebuffer and runs the per-frame pipeline.
type Renderer struct {
	opts   Options
	fb     *FrameBuffer
	raster *Rasterizer
}

// NewRenderer allocates a renderer and its framebuffer.
func NewRenderer(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{opts: opts}
	r.allocate(opts.Width, opts.Height)
	return r, nil
}

func (r *Renderer) allocate(width, height int) {
	r.opts.Width, r.opts.Height = width, height
	r.fb = NewFrameBuffer(width, height)
	r.raster = NewRasterizer(r.fb, r.opts.Bands)
	Logger().Info("framebuffer allocated", "width", width, "height", height, "bands", r.opts.Bands)
}

// Resize reallocates the framebuffer. Non-positive sizes are rejected.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == r.fb.Width && height == r.fb.Height {
		return nil
	}
	r.allocate(width, height)
	return nil
}

// Options returns the renderer's current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// FrameBuffer returns the framebuffer written by RenderFrame.
func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// SetBackground changes the clear color used by subsequent frames.
func (r *Renderer) SetBackground(c Color) {
	r.opts.Background = c
}

// RenderFrame draws faces as seen from cam.
//
// The color buffer is cleared to the background and the depth buffer to
// FarDepth, then every face goes through camera space, the perspective
// divide, the visibility test and canvas normalization before being filled.
// Faces are drawn in order, one fill at a time; the depth test makes the
// result independent of that order.
func (r *Renderer) RenderFrame(cam *Camera, faces []Face) FrameStats {
	start := time.Now()
	stats := FrameStats{Submitted: len(faces)}

	r.fb.Clear(r.opts.Background)
	r.fb.ClearDepth()

	basis := cam.ViewBasis()
	for _, f := range faces {
		raster := f.Triangle.ToCameraSpace(basis, cam.Position).PerspectiveDivide()
		if !raster.IsVisible(cam) {
			stats.Culled++
			continue
		}

		fs := r.raster.FillTriangle(raster.NormalizeToCanvas(cam), f.Color)
		if fs.Degenerate {
			stats.Degenerate++
			continue
		}
		stats.Drawn++
		stats.Fragments += fs.Fragments
		stats.Written += fs.Written
	}

	stats.Elapsed = time.Since(start)
	Logger().Debug("frame rendered",
		"submitted", stats.Submitted,
		"culled", stats.Culled,
		"degenerate", stats.Degenerate,
		"drawn", stats.Drawn,
		"written", stats.Written,
		"elapsed", stats.Elapsed,
	)
	return stats
}
