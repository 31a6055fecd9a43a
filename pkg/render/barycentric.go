package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// MinFragmentDepth discards fragments essentially on the camera plane.
const MinFragmentDepth = 0.1

// Barycentric holds the weights of a point relative to a triangle's vertices.
type Barycentric struct {
	L0, L1, L2 float64
}

// Depth interpolates the vertices' z values with the weights. It is
// written relative to the first vertex so a flat triangle yields its exact z.
func (b Barycentric) Depth(t Triangle) float64 {
	z0 := t.V[0].Z
	return z0 + b.L1*(t.V[1].Z-z0) + b.L2*(t.V[2].Z-z0)
}

// cross2 returns the z component of (b-a) × (c-a), ignoring z.
func cross2(a, b, c math3d.Vec3) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// BarycentricAt returns the weights of p with respect to t, computed from the
// areas of the sub-triangles opposite each vertex divided by their sum.
//
// Areas are unsigned, so the weights are never negative even when p lies
// outside t. Use EdgeTest, not the sign of the weights, for containment.
// ok is false when every sub-triangle is degenerate.
func BarycentricAt(p math3d.Vec3, t Triangle) (b Barycentric, ok bool) {
	a0 := math.Abs(cross2(p, t.V[1], t.V[2])) / 2
	a1 := math.Abs(cross2(p, t.V[2], t.V[0])) / 2
	a2 := math.Abs(cross2(p, t.V[0], t.V[1])) / 2

	sum := a0 + a1 + a2
	if sum == 0 {
		return Barycentric{}, false
	}
	return Barycentric{a0 / sum, a1 / sum, a2 / sum}, true
}

// EdgeTest reports whether p is inside t or on its boundary.
//
// For each directed edge v0→v1, v1→v2, v2→v0 the cross product of the edge
// with the vector from its start to p must not be positive. On the canvas
// (Y down) that accepts triangles wound clockwise, which are the ones that
// appear counter-clockwise to the camera. The winding is never corrected.
func EdgeTest(p math3d.Vec3, t Triangle) bool {
	return cross2(t.V[0], t.V[1], p) <= 0 &&
		cross2(t.V[1], t.V[2], p) <= 0 &&
		cross2(t.V[2], t.V[0], p) <= 0
}
