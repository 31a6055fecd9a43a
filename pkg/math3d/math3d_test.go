package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"div", b.Div(2), V3(2, -2.5, 3)},
		{"min", a.Min(b), V3(1, -5, 3)},
		{"max", a.Max(b), V3(4, 2, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.ApproxEqual(tc.want, eps) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestVec3DivByZero(t *testing.T) {
	got := V3(1, 2, 3).Div(0)
	if got != Zero3() {
		t.Errorf("Div(0) = %v, want zero vector", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	vectors := []Vec3{
		V3(1, 0, 0),
		V3(3, 4, 0),
		V3(-2, 7, 0.5),
		V3(1e-6, -3e-6, 2e-6),
		V3(1e6, 1e6, -1e6),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Len()-1) > eps {
			t.Errorf("|normalize(%v)| = %v, want 1", v, n.Len())
		}
		// Same direction
		if n.Dot(v) <= 0 {
			t.Errorf("normalize(%v) = %v flipped direction", v, n)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := Zero3().Normalize()
	if n != Zero3() {
		t.Errorf("normalize(0) = %v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Error("normalize(0) must not produce NaN")
	}
}

func TestVec3Cross(t *testing.T) {
	// Right-handed: x × y = z
	if got := V3(1, 0, 0).Cross(Up()); got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want (0, 0, 1)", got)
	}

	pairs := [][2]Vec3{
		{V3(1, 2, 3), V3(4, 5, 6)},
		{V3(-1, 0.5, 2), V3(3, -3, 1)},
		{V3(0.1, 0.2, 0.3), V3(10, -20, 30)},
	}
	for _, p := range pairs {
		c := p[0].Cross(p[1])
		if math.Abs(c.Dot(p[0])) > 1e-9 || math.Abs(c.Dot(p[1])) > 1e-9 {
			t.Errorf("cross(%v, %v) = %v is not orthogonal to its inputs", p[0], p[1], c)
		}
	}
}

func TestVec3Len(t *testing.T) {
	if got := V3(3, 4, 12).Len(); got != 13 {
		t.Errorf("Len = %v, want 13", got)
	}
	if got := V3(3, 4, 12).LenSq(); got != 169 {
		t.Errorf("LenSq = %v, want 169", got)
	}
}

func TestTranslationSymmetry(t *testing.T) {
	p := V3(0.3, -1.7, 4.2)
	step := V3(0.1, 0, 0)
	back := p.Add(step).Add(step.Scale(-1))
	if !back.ApproxEqual(p, 1e-15) {
		t.Errorf("translate and back = %v, want %v", back, p)
	}
}

func TestSphericalToVec3(t *testing.T) {
	tests := []struct {
		name string
		s    Spherical
		want Vec3
	}{
		{"forward", S(1, math.Pi/2, 0), V3(0, 0, 1)},
		{"right", S(1, math.Pi/2, math.Pi/2), V3(1, 0, 0)},
		{"up", S(1, 0, 0), V3(0, 1, 0)},
		{"down", S(2, math.Pi, 0), V3(0, -2, 0)},
		{"back", S(3, math.Pi/2, math.Pi), V3(0, 0, -3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.Vec3(); !got.ApproxEqual(tc.want, eps) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	vectors := []Vec3{
		V3(1, 2, 3),
		V3(-4, 0.5, 2),
		V3(0.3, -0.3, -7),
		V3(-1, -1, -1),
		V3(5, 0, 0),
	}

	for _, v := range vectors {
		got := v.Spherical().Vec3()
		if !got.ApproxEqual(v, 1e-9) {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestSphericalZero(t *testing.T) {
	if got := Zero3().Spherical(); got != (Spherical{}) {
		t.Errorf("spherical(0) = %v, want zero", got)
	}
}

func TestSphericalOffsetIdentity(t *testing.T) {
	// A negative polar angle is the same direction as the positive angle
	// with the azimuth turned half a turn.
	for _, theta := range []float64{0.2, 1, 2.5} {
		for _, phi := range []float64{0, 1.3, 4} {
			a := S(1, -theta, phi).Vec3()
			b := S(1, theta, phi+math.Pi).Vec3()
			if !a.ApproxEqual(b, eps) {
				t.Errorf("S(1,-%v,%v)=%v != S(1,%v,%v+π)=%v", theta, phi, a, theta, phi, b)
			}
		}
	}
}

func TestChangeOfBasis(t *testing.T) {
	right := V3(0, 0, -1)
	up := V3(0, 1, 0)
	forward := V3(1, 0, 0)
	m := ChangeOfBasis(right, up, forward)

	if got := m.Row(0); got != right {
		t.Errorf("row 0 = %v, want %v", got, right)
	}
	if got := m.Get(2, 0); got != forward.X {
		t.Errorf("m[2,0] = %v, want %v", got, forward.X)
	}

	v := V3(2, 3, 4)
	want := V3(right.Dot(v), up.Dot(v), forward.Dot(v))
	if got := m.MulVec3(v); !got.ApproxEqual(want, eps) {
		t.Errorf("MulVec3 = %v, want %v", got, want)
	}

	// Transpose undoes an orthonormal change of basis.
	if got := m.Transpose().MulVec3(m.MulVec3(v)); !got.ApproxEqual(v, eps) {
		t.Errorf("transpose round trip = %v, want %v", got, v)
	}
	if got := m.Transpose().Mul(m); got != Identity3() {
		t.Errorf("mᵀm = %v, want identity", got)
	}
}

func TestMat3Columns(t *testing.T) {
	m := FromColumns(V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9))
	if got := m.Col(1); got != V3(4, 5, 6) {
		t.Errorf("col 1 = %v", got)
	}
	if got := m.Row(0); got != V3(1, 4, 7) {
		t.Errorf("row 0 = %v", got)
	}
	if got := Identity3().MulVec3(V3(1, 2, 3)); got != V3(1, 2, 3) {
		t.Errorf("identity * v = %v", got)
	}
}

func TestRotateY3(t *testing.T) {
	for _, phi := range []float64{0, 0.4, math.Pi / 2, 3} {
		got := RotateY3(phi).MulVec3(V3(0, 0, 1))
		if want := S(1, math.Pi/2, phi).Vec3(); !got.ApproxEqual(want, eps) {
			t.Errorf("RotateY3(%v) * forward = %v, want %v", phi, got, want)
		}
	}
	if got := RotateY3(1.2).MulVec3(Up()); !got.ApproxEqual(Up(), eps) {
		t.Errorf("rotation about Y moved up to %v", got)
	}
}

func TestScale3(t *testing.T) {
	got := Scale3(V3(2, -1, 0.5)).MulVec3(V3(1, 2, 4))
	if want := V3(2, -2, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
