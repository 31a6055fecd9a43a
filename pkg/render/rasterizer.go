package render

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/scanline/pkg/math3d"
)

// errSpanBounds reports a band whose columns or buffers do not match its rows.
var errSpanBounds = errors.New("span out of bounds")

// FillStats describes one FillTriangle call.
type FillStats struct {
	Degenerate bool // Zero-area triangle, nothing filled
	Rows       int  // Rows inside the clamped bounding box
	Bands      int  // Bands spawned
	Fragments  int  // Pixels whose depth was interpolated
	Written    int  // Pixels written to the color buffer
}

// Rasterizer fills canvas-space triangles into a framebuffer, splitting each
// triangle's rows into bands that are filled in parallel.
type Rasterizer struct {
	fb    *FrameBuffer
	bands int
}

// NewRasterizer creates a rasterizer drawing into fb with the given number
// of bands (values below 1 mean 1).
func NewRasterizer(fb *FrameBuffer, bands int) *Rasterizer {
	return &Rasterizer{fb: fb, bands: max(bands, 1)}
}

// FrameBuffer returns the target framebuffer.
func (r *Rasterizer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// Bands returns the configured band count.
func (r *Rasterizer) Bands() int {
	return r.bands
}

// FillTriangle scan-converts a canvas-space triangle with a solid color.
//
// The rows of the triangle's clamped pixel bounding box are split into bands
// and each band is filled by its own goroutine; FillTriangle returns after
// all of them finish. Bands cover disjoint rows, and each goroutine only
// sees the slices of the color and depth buffers for its rows.
func (r *Rasterizer) FillTriangle(tri Triangle, c Color) FillStats {
	if tri.Area2() == 0 {
		return FillStats{Degenerate: true}
	}

	rect, ok := PixelBounds(tri.BoundingBox(), r.fb.Width, r.fb.Height)
	if !ok {
		return FillStats{}
	}

	bands := SplitBands(rect.Y0, rect.Y1+1, r.bands)
	stats := FillStats{Rows: rect.Y1 - rect.Y0 + 1, Bands: len(bands)}
	packed := Pack(c)

	var fragments, written atomic.Int64
	var g errgroup.Group
	for _, b := range bands {
		span := r.fb.rows(b.Y0, b.Y1)
		g.Go(func() error {
			f, w, err := fillSpan(tri, span, rect.X0, rect.X1, r.fb.Height, packed)
			fragments.Add(int64(f))
			written.Add(int64(w))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		Logger().Error("fill triangle", "err", err, "rect", rect)
	}

	stats.Fragments = int(fragments.Load())
	stats.Written = int(written.Load())
	return stats
}

// fillSpan runs the per-pixel fill rule over columns [x0, x1] of every row in
// span and returns how many fragments were tested and written.
//
// A fragment is skipped unless it is strictly nearer than the stored depth,
// so equal depths keep the first fragment. It is written only when it is in
// front of MinFragmentDepth and passes the edge test. A column range outside
// the span, or buffers shorter than its rows, fail with errSpanBounds before
// any pixel is touched.
func fillSpan(tri Triangle, span rowSpan, x0, x1, height int, packed uint32) (fragments, written int, err error) {
	n := (span.Y1 - span.Y0) * span.Width
	if x0 < 0 || x1 >= span.Width || span.Y0 < 0 || span.Y1 > height ||
		len(span.Pixels) < n || len(span.Depth) < n {
		return 0, 0, fmt.Errorf("%w: rows [%d,%d) cols [%d,%d] width %d",
			errSpanBounds, span.Y0, span.Y1, x0, x1, span.Width)
	}
	w, h := float64(span.Width), float64(height)

	for y := span.Y0; y < span.Y1; y++ {
		py := (float64(y) + 0.5) / h
		rowOffset := (y - span.Y0) * span.Width

		for x := x0; x <= x1; x++ {
			p := math3d.V3((float64(x)+0.5)/w, py, 0)

			bc, ok := BarycentricAt(p, tri)
			if !ok {
				continue
			}
			z := bc.Depth(tri)
			fragments++

			idx := rowOffset + x
			if z >= span.Depth[idx] {
				continue
			}
			if z > MinFragmentDepth && EdgeTest(p, tri) {
				span.Depth[idx] = z
				span.Pixels[idx] = packed
				written++
			}
		}
	}
	return fragments, written, nil
}
