package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestPerspectiveDivide(t *testing.T) {
	tests := []struct {
		name string
		in   math3d.Vec3
		want math3d.Vec3
	}{
		{"in front", math3d.V3(1, 2, 4), math3d.V3(0.25, 0.5, 4)},
		{"behind keeps z sign", math3d.V3(1, 2, -4), math3d.V3(0.25, 0.5, -4)},
		{"depth floor", math3d.V3(1, -1, 0.01), math3d.V3(10, -10, 0.01)},
		{"on camera plane", math3d.V3(1, 1, 0), math3d.V3(10, 10, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PerspectiveDivide(tc.in); !got.ApproxEqual(tc.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToCameraSpace(t *testing.T) {
	c := NewCamera(1, 1)
	c.SetPosition(math3d.V3(1, 2, 3))
	c.SetOrientation(math.Pi/2, math.Pi/2) // looking along +X

	tri := Tri(math3d.V3(5, 2, 3), math3d.V3(1, 4, 3), math3d.V3(1, 2, 0))
	got := tri.ToCameraSpace(c.ViewBasis(), c.Position)

	want := [3]math3d.Vec3{
		math3d.V3(0, 0, 4), // straight ahead
		math3d.V3(0, 2, 0), // above
		math3d.V3(3, 0, 0), // world -Z is camera right when facing +X
	}
	for i := range want {
		if !got.V[i].ApproxEqual(want[i], 1e-12) {
			t.Errorf("vertex %d = %v, want %v", i, got.V[i], want[i])
		}
	}
}

func TestBoundingBox(t *testing.T) {
	tri := Tri(math3d.V3(1, -2, 9), math3d.V3(-3, 4, 0), math3d.V3(2, 0.5, -1))
	want := BoundingBox2D{X0: -3, Y0: -2, X1: 2, Y1: 4}
	if got := tri.BoundingBox(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestIsVisible(t *testing.T) {
	c := NewCamera(1, 0.5)

	tests := []struct {
		name string
		tri  Triangle
		want bool
	}{
		{"inside", Tri(math3d.V3(0, 0, 1), math3d.V3(0.5, 0, 1), math3d.V3(0, 0.2, 1)), true},
		{"partly outside", Tri(math3d.V3(0.5, 0, 1), math3d.V3(3, 0, 1), math3d.V3(0.5, 3, 1)), true},
		{"enclosing frame", Tri(math3d.V3(-9, -9, 1), math3d.V3(9, -9, 1), math3d.V3(0, 9, 1)), true},
		{"touching edge", Tri(math3d.V3(1, 0, 1), math3d.V3(2, 0, 1), math3d.V3(2, 0.3, 1)), true},
		{"right of frame", Tri(math3d.V3(1.1, 0, 1), math3d.V3(2, 0, 1), math3d.V3(2, 0.3, 1)), false},
		{"above frame", Tri(math3d.V3(0, 0.6, 1), math3d.V3(0.2, 0.6, 1), math3d.V3(0, 1, 1)), false},
		{"below frame", Tri(math3d.V3(0, -0.6, 1), math3d.V3(0.2, -0.6, 1), math3d.V3(0, -1, 1)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tri.IsVisible(c); got != tc.want {
				t.Errorf("IsVisible = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeToCanvas(t *testing.T) {
	c := NewCamera(2, 1)
	tri := Tri(math3d.V3(-2, 1, 3), math3d.V3(2, -1, 4), math3d.V3(0, 0, 5))
	got := tri.NormalizeToCanvas(c)

	want := [3]math3d.Vec3{
		math3d.V3(0, 0, 3), // top-left corner
		math3d.V3(1, 1, 4), // bottom-right corner
		math3d.V3(0.5, 0.5, 5),
	}
	for i := range want {
		if !got.V[i].ApproxEqual(want[i], 1e-12) {
			t.Errorf("vertex %d = %v, want %v", i, got.V[i], want[i])
		}
	}
}

// TestExampleTrianglePipeline follows the triangle (0,1,4), (0,0,4), (1,0,4)
// through every stage for a camera at the origin looking along +Z.
func TestExampleTrianglePipeline(t *testing.T) {
	c := NewCamera(1, 1)
	world := Tri(math3d.V3(0, 1, 4), math3d.V3(0, 0, 4), math3d.V3(1, 0, 4))

	raster := world.ToCameraSpace(c.ViewBasis(), c.Position).PerspectiveDivide()
	wantRaster := [3]math3d.Vec3{
		math3d.V3(0, 0.25, 4),
		math3d.V3(0, 0, 4),
		math3d.V3(0.25, 0, 4),
	}
	for i := range wantRaster {
		if !raster.V[i].ApproxEqual(wantRaster[i], 1e-12) {
			t.Errorf("raster vertex %d = %v, want %v", i, raster.V[i], wantRaster[i])
		}
	}

	if !raster.IsVisible(c) {
		t.Fatal("example triangle should be visible")
	}
	bb := raster.BoundingBox()
	frame := BoundingBox2D{X0: -1, Y0: -1, X1: 1, Y1: 1}
	if !frame.Contains(bb.X0, bb.Y0) || !frame.Contains(bb.X1, bb.Y1) {
		t.Errorf("bounding box %+v should lie fully inside the frame", bb)
	}

	canvas := raster.NormalizeToCanvas(c)
	wantCanvas := [3]math3d.Vec3{
		math3d.V3(0.5, 0.375, 4),
		math3d.V3(0.5, 0.5, 4),
		math3d.V3(0.625, 0.5, 4),
	}
	for i := range wantCanvas {
		if !canvas.V[i].ApproxEqual(wantCanvas[i], 1e-12) {
			t.Errorf("canvas vertex %d = %v, want %v", i, canvas.V[i], wantCanvas[i])
		}
	}
}

func TestArea2(t *testing.T) {
	ccw := Tri(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
	if got := ccw.Area2(); got != 1 {
		t.Errorf("Area2 = %v, want 1", got)
	}
	flat := Tri(math3d.V3(0, 0, 0), math3d.V3(1, 1, 0), math3d.V3(2, 2, 5))
	if got := flat.Area2(); got != 0 {
		t.Errorf("collinear Area2 = %v, want 0", got)
	}
}
