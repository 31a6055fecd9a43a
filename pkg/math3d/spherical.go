package math3d

import "math"

// Spherical is a vector in spherical coordinates.
//
// Theta is the polar angle measured from the +Y (up) axis and Phi is the
// azimuth measured in the XZ plane from +Z toward +X:
//
//	x = R sin(Theta) sin(Phi)
//	y = R cos(Theta)
//	z = R sin(Theta) cos(Phi)
//
// With Theta = Pi/2 and Phi = 0 the vector points along +Z.
type Spherical struct {
	R     float64 // Radius, >= 0
	Theta float64 // Polar angle from +Y
	Phi   float64 // Azimuth from +Z toward +X
}

// S creates a new Spherical.
func S(r, theta, phi float64) Spherical {
	return Spherical{R: r, Theta: theta, Phi: phi}
}

// Vec3 converts s to Cartesian coordinates.
func (s Spherical) Vec3() Vec3 {
	sinT, cosT := math.Sincos(s.Theta)
	sinP, cosP := math.Sincos(s.Phi)
	return Vec3{
		s.R * sinT * sinP,
		s.R * cosT,
		s.R * sinT * cosP,
	}
}

// Unit returns s with radius 1.
func (s Spherical) Unit() Spherical {
	return Spherical{R: 1, Theta: s.Theta, Phi: s.Phi}
}

// Spherical converts a to spherical coordinates.
//
// The zero vector has no direction; it converts to the zero Spherical.
// On the Y axis Phi is 0.
func (a Vec3) Spherical() Spherical {
	r := a.Len()
	if r == 0 {
		return Spherical{}
	}
	// Clamp against rounding so Acos never sees |y/r| > 1.
	c := math.Max(-1, math.Min(1, a.Y/r))
	return Spherical{
		R:     r,
		Theta: math.Acos(c),
		Phi:   math.Atan2(a.X, a.Z),
	}
}
