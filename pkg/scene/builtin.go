package scene

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// ErrUnknownScene is returned by Builtin for names it does not know.
var ErrUnknownScene = errors.New("unknown scene")

// DefaultCubeColors are the face colors Cube cycles through:
// back, front, left, right, top, bottom.
var DefaultCubeColors = []render.Color{
	render.ColorRed,
	render.ColorGreen,
	render.ColorBlue,
	render.ColorYellow,
	render.ColorCyan,
	render.ColorMagenta,
}

var builtins = map[string]func() *Mesh{
	"demo":     Demo,
	"triangle": ExampleTriangle,
	"cube": func() *Mesh {
		return Cube(math3d.V3(0, 0, 3), 1.5)
	},
	"floor": func() *Mesh {
		return Floor(math3d.V3(0, -1, 7), 6, 12, render.ColorGray, render.RGB(60, 60, 70))
	},
}

// Builtin returns a fresh copy of the named scene.
func Builtin(name string) (*Mesh, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	return build(), nil
}

// Names lists the built-in scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExampleTriangle is a single triangle four units in front of the default
// camera, lying against its left and bottom frame axes.
func ExampleTriangle() *Mesh {
	m := NewMesh("triangle")
	a := m.AddVertex(math3d.V3(0, 1, 4))
	b := m.AddVertex(math3d.V3(0, 0, 4))
	c := m.AddVertex(math3d.V3(1, 0, 4))
	m.AddFace(a, b, c, render.ColorWhite)
	m.CalculateBounds()
	return m
}

// Cube builds an axis-aligned cube as 12 triangles, each wound
// counter-clockwise when seen from outside the cube. Face colors cycle
// through colors (DefaultCubeColors when none are given).
func Cube(center math3d.Vec3, size float64, colors ...render.Color) *Mesh {
	if len(colors) == 0 {
		colors = DefaultCubeColors
	}
	h := size / 2

	m := NewMesh("cube")
	corners := [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, // 0: left-bottom-back
		{X: h, Y: -h, Z: -h},  // 1: right-bottom-back
		{X: h, Y: h, Z: -h},   // 2: right-top-back
		{X: -h, Y: h, Z: -h},  // 3: left-top-back
		{X: -h, Y: -h, Z: h},  // 4: left-bottom-front
		{X: h, Y: -h, Z: h},   // 5: right-bottom-front
		{X: h, Y: h, Z: h},    // 6: right-top-front
		{X: -h, Y: h, Z: h},   // 7: left-top-front
	}
	for _, c := range corners {
		m.AddVertex(center.Add(c))
	}

	sides := [6][4]int{
		{0, 1, 2, 3}, // Back
		{5, 4, 7, 6}, // Front
		{4, 0, 3, 7}, // Left
		{1, 5, 6, 2}, // Right
		{3, 2, 6, 7}, // Top
		{4, 5, 1, 0}, // Bottom
	}
	for i, s := range sides {
		m.AddQuad(s[0], s[1], s[2], s[3], colors[i%len(colors)])
	}

	m.CalculateBounds()
	return m
}

// Quad builds a two-triangle mesh from four corners given counter-clockwise
// as seen from the visible side.
func Quad(a, b, c, d math3d.Vec3, color render.Color) *Mesh {
	m := NewMesh("quad")
	m.AddQuad(m.AddVertex(a), m.AddVertex(b), m.AddVertex(c), m.AddVertex(d), color)
	m.CalculateBounds()
	return m
}

// Floor builds a horizontal checkerboard of tiles x tiles squares centered
// on center and extending half units along X and Z. It faces up.
func Floor(center math3d.Vec3, half float64, tiles int, even, odd render.Color) *Mesh {
	tiles = max(tiles, 1)
	step := 2 * half / float64(tiles)

	m := NewMesh("floor")
	idx := func(i, j int) int { return j*(tiles+1) + i }
	for j := 0; j <= tiles; j++ {
		for i := 0; i <= tiles; i++ {
			m.AddVertex(math3d.V3(
				center.X-half+float64(i)*step,
				center.Y,
				center.Z-half+float64(j)*step,
			))
		}
	}

	for j := range tiles {
		for i := range tiles {
			color := even
			if (i+j)%2 == 1 {
				color = odd
			}
			m.AddQuad(idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1), color)
		}
	}

	m.CalculateBounds()
	return m
}

// Demo is the default scene: a checkerboard floor, a few cubes, one of them
// turned, and the example triangle.
func Demo() *Mesh {
	m := NewMesh("demo")
	m.Append(Floor(math3d.V3(0, -1, 7), 6, 12, render.RGB(90, 90, 100), render.RGB(50, 50, 60)))
	m.Append(Cube(math3d.V3(-2, -0.5, 6), 1))
	m.Append(Cube(math3d.V3(2.5, -0.25, 8), 1.5, render.ColorSky, render.ColorGrass))

	turned := Cube(math3d.Zero3(), 1, render.ColorYellow, render.ColorMagenta, render.ColorCyan)
	turned.Transform(math3d.RotateY3(math.Pi / 6))
	turned.Translate(math3d.V3(0, -0.5, 9))
	m.Append(turned)

	m.Append(ExampleTriangle())
	return m
}
