// Package render implements the scanline rasterizer: camera, triangle
// pipeline, depth-buffered scan conversion and banded parallel fill.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// FarDepth is the depth buffer value meaning "nothing drawn yet".
const FarDepth = math.MaxFloat64

// FrameBuffer owns the color and depth buffers for one output surface.
// Both are row-major with a stride of Width. Pixels are packed RGBA8888
// (see Pack), the layout handed to presenters.
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []uint32
	Depth  []float64
}

// NewFrameBuffer allocates a framebuffer with the given dimensions.
// The depth buffer starts cleared to FarDepth.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.ClearDepth()
	return fb
}

// Len returns the total number of pixels.
func (fb *FrameBuffer) Len() int {
	return fb.Width * fb.Height
}

// Clear fills the color buffer with a solid color.
func (fb *FrameBuffer) Clear(c Color) {
	fill(fb.Pixels, Pack(c))
}

// ClearDepth resets every depth entry to FarDepth.
func (fb *FrameBuffer) ClearDepth() {
	fill(fb.Depth, FarDepth)
}

// fill sets every element of s to v using copy-doubling.
func fill[T any](s []T, v T) {
	n := len(s)
	if n == 0 {
		return
	}
	s[0] = v
	for i := 1; i < n; i *= 2 {
		copy(s[i:], s[:i])
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *FrameBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = Pack(c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *FrameBuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return Unpack(fb.Pixels[y*fb.Width+x])
}

// DepthAt returns the depth at (x, y), or FarDepth if out of bounds.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return FarDepth
	}
	return fb.Depth[y*fb.Width+x]
}

// rowSpan is a view of the rows [Y0, Y1) of a framebuffer. Pixels and Depth
// are subslices of the parent buffers indexed from row Y0, so two spans
// over disjoint row ranges never share an element.
type rowSpan struct {
	Y0, Y1 int
	Width  int
	Pixels []uint32
	Depth  []float64
}

// rows returns the span covering rows [y0, y1). Callers clamp beforehand.
func (fb *FrameBuffer) rows(y0, y1 int) rowSpan {
	lo, hi := y0*fb.Width, y1*fb.Width
	return rowSpan{
		Y0:     y0,
		Y1:     y1,
		Width:  fb.Width,
		Pixels: fb.Pixels[lo:hi:hi],
		Depth:  fb.Depth[lo:hi:hi],
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA writes the color buffer into dst as 8-bit R, G, B, A bytes, the
// layout of image.RGBA.Pix. dst must hold at least 4*Len() bytes.
func (fb *FrameBuffer) CopyRGBA(dst []byte) {
	for i, p := range fb.Pixels {
		j := i * 4
		dst[j+0] = uint8(p >> 24)
		dst[j+1] = uint8(p >> 16)
		dst[j+2] = uint8(p >> 8)
		dst[j+3] = uint8(p)
	}
}

// Encode writes the framebuffer as an image. format is "png" or "bmp".
func (fb *FrameBuffer) Encode(w io.Writer, format string) error {
	img := fb.ToImage()
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save writes the framebuffer to path, choosing the encoder from the file
// extension (.png or .bmp).
func (fb *FrameBuffer) Save(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format != "png" && format != "bmp" {
		return fmt.Errorf("unsupported image format %q (use .png or .bmp)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fb.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return f.Close()
}
