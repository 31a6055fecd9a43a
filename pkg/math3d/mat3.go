package math3d

import "math"

// Mat3 is a 3x3 matrix stored in column-major order, matching the layout the
// rest of the package uses for transforms.
//
// Memory layout (indices):
// | 0  3  6 |
// | 1  4  7 |
// | 2  5  8 |
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Scale3 creates a scaling matrix.
func Scale3(v Vec3) Mat3 {
	return Mat3{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	}
}

// RotateY3 creates a rotation around the Y axis. Positive angles turn +Z
// toward +X, the direction azimuth grows in Spherical.
func RotateY3(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// ChangeOfBasis builds the matrix that maps a world-space vector into the
// frame spanned by right, up and forward. The axes become the matrix rows,
// so MulVec3(v) = (right·v, up·v, forward·v).
//
// The axes are expected to be orthonormal; no orthogonalization is done here.
func ChangeOfBasis(right, up, forward Vec3) Mat3 {
	return Mat3{
		right.X, up.X, forward.X,
		right.Y, up.Y, forward.Y,
		right.Z, up.Z, forward.Z,
	}
}

// FromColumns builds a matrix whose columns are c0, c1 and c2.
func FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// MulVec3 returns m * v: the columns of m weighted by the components of v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m.Col(0).Scale(v.X).
		Add(m.Col(1).Scale(v.Y)).
		Add(m.Col(2).Scale(v.Z))
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for col := range 3 {
		for row := range 3 {
			var sum float64
			for k := range 3 {
				sum += a[row+k*3] * b[k+col*3]
			}
			m[row+col*3] = sum
		}
	}
	return m
}

// Transpose returns the transposed matrix. For an orthonormal basis this is
// the inverse, mapping camera-local vectors back into world space.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Get returns the element at (row, col).
func (m Mat3) Get(row, col int) float64 {
	return m[row+col*3]
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i], m[i+3], m[i+6]}
}

// Col returns column i as a vector.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}
