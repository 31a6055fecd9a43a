package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// PoleMargin keeps the camera's polar angle away from the poles. At theta = 0
// or Pi the forward axis lies on the world up axis and no longer depends on
// phi, so turning input would roll the view instead of turning it.
const PoleMargin = 0.01

// Camera is a pinhole camera with a position, a spherical orientation and the
// half extents of its view frame at unit distance.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation is the forward direction. Only Theta and Phi are used;
	// the radius is treated as 1.
	Orientation math3d.Spherical

	// View frame half extents at distance 1 along the forward axis
	HalfWidth  float64
	HalfHeight float64
}

// NewCamera creates a camera at the origin looking along +Z.
func NewCamera(halfWidth, halfHeight float64) *Camera {
	return &Camera{
		Position:    math3d.Zero3(),
		Orientation: math3d.S(1, math.Pi/2, 0),
		HalfWidth:   halfWidth,
		HalfHeight:  halfHeight,
	}
}

// Basis returns the camera's right, up and forward unit axes.
//
//	forward = S(1, θ, φ)
//	right   = S(1, π/2, φ+π/2)
//	up      = S(1, π/2-θ, φ+π)
//
// up is forward tilted back a quarter turn; S(1, π/2-θ, φ+π) is the same
// direction as S(1, θ-π/2, φ). The three axes are orthonormal for every θ
// and φ by construction, and right × up = forward.
func (c *Camera) Basis() (right, up, forward math3d.Vec3) {
	theta, phi := c.Orientation.Theta, c.Orientation.Phi
	forward = math3d.S(1, theta, phi).Vec3()
	right = math3d.S(1, math.Pi/2, phi+math.Pi/2).Vec3()
	up = math3d.S(1, math.Pi/2-theta, phi+math.Pi).Vec3()
	return right, up, forward
}

// ViewBasis returns the change-of-basis matrix mapping a world-space offset
// into camera-local coordinates (x = right, y = up, z = forward).
// It is derived from the current orientation on every call.
func (c *Camera) ViewBasis() math3d.Mat3 {
	right, up, forward := c.Basis()
	return math3d.ChangeOfBasis(right, up, forward)
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3 {
	_, _, forward := c.Basis()
	return forward
}

// Right returns the right direction vector.
func (c *Camera) Right() math3d.Vec3 {
	right, _, _ := c.Basis()
	return right
}

// Up returns the camera up direction vector.
func (c *Camera) Up() math3d.Vec3 {
	_, up, _ := c.Basis()
	return up
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// Translate moves the camera by delta in world space.
func (c *Camera) Translate(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Translate(c.Forward().Scale(distance))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Translate(c.Right().Scale(distance))
}

// MoveUp moves the camera along the world up axis (or down if negative).
func (c *Camera) MoveUp(distance float64) {
	c.Translate(math3d.Up().Scale(distance))
}

// SetOrientation sets the polar and azimuth angles (in radians).
func (c *Camera) SetOrientation(theta, phi float64) {
	c.Orientation = math3d.S(1, clampTheta(theta), wrapAngle(phi))
}

// Rotate changes the polar and azimuth angles by the given deltas (in radians).
func (c *Camera) Rotate(deltaTheta, deltaPhi float64) {
	c.SetOrientation(c.Orientation.Theta+deltaTheta, c.Orientation.Phi+deltaPhi)
}

// LookAt points the camera at a target point.
// Does nothing if the target is the camera position.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position)
	if dir.LenSq() == 0 {
		return
	}
	s := dir.Spherical()
	c.SetOrientation(s.Theta, s.Phi)
}

func clampTheta(theta float64) float64 {
	return math.Max(PoleMargin, math.Min(math.Pi-PoleMargin, theta))
}

// wrapAngle maps a into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
