package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestCameraDefaultBasis(t *testing.T) {
	c := NewCamera(1, 1)
	right, up, forward := c.Basis()

	tests := []struct {
		name string
		got  math3d.Vec3
		want math3d.Vec3
	}{
		{"right", right, math3d.V3(1, 0, 0)},
		{"up", up, math3d.Up()},
		{"forward", forward, math3d.V3(0, 0, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.ApproxEqual(tc.want, 1e-12) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	c := NewCamera(1, 1)
	const tol = 1e-12

	for theta := PoleMargin; theta <= math.Pi-PoleMargin; theta += 0.07 {
		for phi := 0.0; phi < 2*math.Pi; phi += 0.11 {
			c.Orientation = math3d.S(1, theta, phi)
			right, up, forward := c.Basis()

			for name, v := range map[string]math3d.Vec3{"right": right, "up": up, "forward": forward} {
				if math.Abs(v.Len()-1) > tol {
					t.Fatalf("θ=%v φ=%v: |%s| = %v", theta, phi, name, v.Len())
				}
			}
			if d := right.Dot(up); math.Abs(d) > tol {
				t.Fatalf("θ=%v φ=%v: right·up = %v", theta, phi, d)
			}
			if d := right.Dot(forward); math.Abs(d) > tol {
				t.Fatalf("θ=%v φ=%v: right·forward = %v", theta, phi, d)
			}
			if d := up.Dot(forward); math.Abs(d) > tol {
				t.Fatalf("θ=%v φ=%v: up·forward = %v", theta, phi, d)
			}
			if got := right.Cross(up); !got.ApproxEqual(forward, tol) {
				t.Fatalf("θ=%v φ=%v: right×up = %v, want %v", theta, phi, got, forward)
			}
		}
	}
}

func TestCameraBasisNearPoles(t *testing.T) {
	// The axes stay orthonormal at the poles; what degenerates is that phi
	// no longer changes the forward axis.
	c := NewCamera(1, 1)
	for _, theta := range []float64{1e-9, math.Pi - 1e-9} {
		c.Orientation = math3d.S(1, theta, 0)
		f0 := c.Forward()
		c.Orientation = math3d.S(1, theta, 2)
		f1 := c.Forward()
		if !f0.ApproxEqual(f1, 1e-8) {
			t.Errorf("θ=%v: forward depends on φ: %v vs %v", theta, f0, f1)
		}
		right, up, forward := c.Basis()
		if math.Abs(right.Dot(up)) > 1e-12 || math.Abs(up.Dot(forward)) > 1e-12 {
			t.Errorf("θ=%v: basis not orthogonal", theta)
		}
	}
}

func TestCameraViewBasisMapsAxes(t *testing.T) {
	c := NewCamera(1, 1)
	c.SetOrientation(1.1, 2.3)
	basis := c.ViewBasis()
	right, up, forward := c.Basis()

	if got := basis.MulVec3(right); !got.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("right maps to %v", got)
	}
	if got := basis.MulVec3(up); !got.ApproxEqual(math3d.V3(0, 1, 0), 1e-12) {
		t.Errorf("up maps to %v", got)
	}
	if got := basis.MulVec3(forward.Scale(3)); !got.ApproxEqual(math3d.V3(0, 0, 3), 1e-12) {
		t.Errorf("forward maps to %v", got)
	}
}

func TestCameraRotateClampsTheta(t *testing.T) {
	c := NewCamera(1, 1)

	c.Rotate(-10, 0)
	if c.Orientation.Theta != PoleMargin {
		t.Errorf("theta = %v, want %v", c.Orientation.Theta, PoleMargin)
	}

	c.Rotate(20, 0)
	if c.Orientation.Theta != math.Pi-PoleMargin {
		t.Errorf("theta = %v, want %v", c.Orientation.Theta, math.Pi-PoleMargin)
	}
}

func TestCameraRotateWrapsPhi(t *testing.T) {
	c := NewCamera(1, 1)

	c.Rotate(0, -0.5)
	if want := 2*math.Pi - 0.5; math.Abs(c.Orientation.Phi-want) > 1e-12 {
		t.Errorf("phi = %v, want %v", c.Orientation.Phi, want)
	}

	c.Rotate(0, 1)
	if math.Abs(c.Orientation.Phi-0.5) > 1e-12 {
		t.Errorf("phi = %v, want 0.5", c.Orientation.Phi)
	}
}

func TestCameraTranslateSymmetry(t *testing.T) {
	c := NewCamera(1, 1)
	c.SetPosition(math3d.V3(0.7, -0.2, 3))
	start := c.Position

	c.Translate(math3d.V3(0.1, 0, 0))
	c.Translate(math3d.V3(-0.1, 0, 0))

	if !c.Position.ApproxEqual(start, 1e-15) {
		t.Errorf("position = %v, want %v", c.Position, start)
	}
}

func TestCameraMoves(t *testing.T) {
	c := NewCamera(1, 1)

	c.MoveForward(2)
	c.MoveRight(1)
	c.MoveUp(-0.5)

	if want := math3d.V3(1, -0.5, 2); !c.Position.ApproxEqual(want, 1e-12) {
		t.Errorf("position = %v, want %v", c.Position, want)
	}
}

func TestCameraLookAt(t *testing.T) {
	c := NewCamera(1, 1)
	c.SetPosition(math3d.V3(0, 0, -5))
	c.LookAt(math3d.V3(5, 0, -5))

	if got := c.Forward(); !got.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("forward = %v, want +X", got)
	}

	// Looking at its own position leaves the orientation alone.
	before := c.Orientation
	c.LookAt(c.Position)
	if c.Orientation != before {
		t.Errorf("orientation changed to %v", c.Orientation)
	}
}
