// Package math3d provides the vector and matrix value types used by the
// scanline rasterizer.
package math3d

import "math"

// Vec3 is a point or direction in world, camera or canvas space. On the
// canvas X and Y are in [0, 1] and Z carries the camera-space depth.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the origin.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns world +Y, the axis the camera turns around.
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div divides every component by s. s == 0 yields the zero vector.
func (a Vec3) Div(s float64) Vec3 {
	if s == 0 {
		return Vec3{}
	}
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a × b in a right-handed system.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// LenSq is the squared Euclidean length.
func (a Vec3) LenSq() float64 {
	return a.Dot(a)
}

func (a Vec3) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize scales a to unit length. The zero vector stays zero.
func (a Vec3) Normalize() Vec3 {
	return a.Div(a.Len())
}

// Min and Max work per component; mesh bounds are built from them.

func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// ApproxEqual reports whether no component of a and b differs by more than eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}
