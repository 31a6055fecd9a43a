package render

import "math"

// DefaultBands is the number of horizontal bands a fill is split into.
const DefaultBands = 8

// Band is a half-open range of pixel rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitBands partitions the rows [y0, y1) into n contiguous bands of equal
// size (within one row). Every row belongs to exactly one band; empty bands
// are dropped, so fewer than n bands come back when there are fewer rows
// than bands. n < 1 is treated as 1.
func SplitBands(y0, y1, n int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	n = max(n, 1)

	bands := make([]Band, 0, min(n, rows))
	for i := range n {
		lo := y0 + i*rows/n
		hi := y0 + (i+1)*rows/n
		if lo < hi {
			bands = append(bands, Band{Y0: lo, Y1: hi})
		}
	}
	return bands
}

// PixelRect is an inclusive range of pixel columns and rows.
type PixelRect struct {
	X0, Y0, X1, Y1 int
}

// PixelBounds returns the pixels of a width x height buffer whose centers
// ((x+0.5)/width, (y+0.5)/height) fall inside a canvas-space bounding box,
// clamped to the buffer. ok is false when no pixel qualifies.
func PixelBounds(b BoundingBox2D, width, height int) (r PixelRect, ok bool) {
	w, h := float64(width), float64(height)

	x0 := math.Max(math.Ceil(b.X0*w-0.5), 0)
	x1 := math.Min(math.Floor(b.X1*w-0.5), w-1)
	y0 := math.Max(math.Ceil(b.Y0*h-0.5), 0)
	y1 := math.Min(math.Floor(b.Y1*h-0.5), h-1)

	// Written so NaN bounds fail too.
	if !(x0 <= x1) || !(y0 <= y1) {
		return PixelRect{}, false
	}
	return PixelRect{int(x0), int(y0), int(x1), int(y1)}, true
}
