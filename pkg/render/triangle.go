package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// DepthFloor is the smallest divisor used by the perspective divide.
const DepthFloor = 0.1

// Triangle is an ordered triple of vertices. The coordinate space it lives
// in (world, camera, raster or canvas) is implied by the pipeline stage
// holding it.
type Triangle struct {
	V [3]math3d.Vec3
}

// Tri creates a triangle from three vertices.
func Tri(v0, v1, v2 math3d.Vec3) Triangle {
	return Triangle{V: [3]math3d.Vec3{v0, v1, v2}}
}

// Map returns a triangle with f applied to each vertex.
func (t Triangle) Map(f func(math3d.Vec3) math3d.Vec3) Triangle {
	return Triangle{V: [3]math3d.Vec3{f(t.V[0]), f(t.V[1]), f(t.V[2])}}
}

// ToCameraSpace moves a world-space triangle into camera space: each vertex
// is offset by the camera position and then mapped through the view basis.
// The camera looks along +Z in the result. Nothing is clipped.
func (t Triangle) ToCameraSpace(basis math3d.Mat3, position math3d.Vec3) Triangle {
	return t.Map(func(v math3d.Vec3) math3d.Vec3 {
		return basis.MulVec3(v.Sub(position))
	})
}

// PerspectiveDivide maps a camera-space point (x, y, z) to (x/d, y/d, z) with
// d = max(|z|, DepthFloor).
//
// The sign of z is dropped, so points behind the camera project as if they
// were in front of it. This stands in for near-plane clipping and is only an
// approximation; visibility culling and the fragment depth threshold catch
// most of what it lets through.
func PerspectiveDivide(v math3d.Vec3) math3d.Vec3 {
	d := math.Max(math.Abs(v.Z), DepthFloor)
	return math3d.V3(v.X/d, v.Y/d, v.Z)
}

// PerspectiveDivide maps a camera-space triangle to raster space.
func (t Triangle) PerspectiveDivide() Triangle {
	return t.Map(PerspectiveDivide)
}

// NormalizeToCanvas maps a raster-space triangle onto the canvas: the view
// frame [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight] becomes the unit
// square with the origin in the top-left corner, so raster +Y points to the
// top of the image. Z is passed through.
func (t Triangle) NormalizeToCanvas(c *Camera) Triangle {
	w, h := 2*c.HalfWidth, 2*c.HalfHeight
	return t.Map(func(v math3d.Vec3) math3d.Vec3 {
		return math3d.V3(
			(v.X+c.HalfWidth)/w,
			(c.HalfHeight-v.Y)/h,
			v.Z,
		)
	})
}

// BoundingBox returns the axis-aligned box around the triangle's x and y.
func (t Triangle) BoundingBox() BoundingBox2D {
	return BoundingBox2D{
		X0: min3(t.V[0].X, t.V[1].X, t.V[2].X),
		Y0: min3(t.V[0].Y, t.V[1].Y, t.V[2].Y),
		X1: max3(t.V[0].X, t.V[1].X, t.V[2].X),
		Y1: max3(t.V[0].Y, t.V[1].Y, t.V[2].Y),
	}
}

// IsVisible reports whether a raster-space triangle's bounding box overlaps
// the camera's view frame. This is a coarse test: a triangle that is only
// partly inside is accepted and trimmed later by the fill bounds.
func (t Triangle) IsVisible(c *Camera) bool {
	frame := BoundingBox2D{
		X0: -c.HalfWidth, Y0: -c.HalfHeight,
		X1: c.HalfWidth, Y1: c.HalfHeight,
	}
	return t.BoundingBox().Intersects(frame)
}

// Area2 returns twice the signed area of the triangle's projection onto the
// XY plane. Zero means the triangle is degenerate.
func (t Triangle) Area2() float64 {
	return cross2(t.V[0], t.V[1], t.V[2])
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() math3d.Vec3 {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).Scale(1.0 / 3)
}

// BoundingBox2D is an axis-aligned rectangle with X0 <= X1 and Y0 <= Y1.
type BoundingBox2D struct {
	X0, Y0, X1, Y1 float64
}

// Intersects reports whether b and o overlap. Touching edges count.
func (b BoundingBox2D) Intersects(o BoundingBox2D) bool {
	return b.X0 <= o.X1 && b.X1 >= o.X0 && b.Y0 <= o.Y1 && b.Y1 >= o.Y0
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b BoundingBox2D) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
