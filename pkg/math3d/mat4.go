package math3d

import "math"

// Mat4 is an affine model transform, row-major: m[row][col]. The bottom row
// is always 0 0 0 1 for matrices built by this package, so points map
// without a perspective divide.
type Mat4 [4][4]float64

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate moves points by v.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = v.X, v.Y, v.Z
	return m
}

// Scale scales each axis by the matching component of v.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = v.X, v.Y, v.Z
	return m
}

// ScaleUniform scales all three axes by s.
func ScaleUniform(s float64) Mat4 {
	return Scale(V3(s, s, s))
}

// rotation builds a right-handed rotation by angle about the axis whose
// index is fixed (0 = X, 1 = Y, 2 = Z).
func rotation(fixed int, angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	// a and b are the two axes that turn, ordered so a -> b is positive.
	a, b := (fixed+1)%3, (fixed+2)%3
	m := Identity()
	m[a][a], m[a][b] = c, -s
	m[b][a], m[b][b] = s, c
	return m
}

// RotateX rotates about the X axis; +Y turns toward +Z.
func RotateX(angle float64) Mat4 { return rotation(0, angle) }

// RotateY rotates about the Y axis; +Z turns toward +X, so +X turns toward -Z.
func RotateY(angle float64) Mat4 { return rotation(1, angle) }

// RotateZ rotates about the Z axis; +X turns toward +Y.
func RotateZ(angle float64) Mat4 { return rotation(2, angle) }

// Mul returns a*b, the transform that applies b first and then a.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			for k := range 4 {
				out[r][c] += a[r][k] * b[k][c]
			}
		}
	}
	return out
}

// MulVec3 transforms v as a point.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec3Dir(v).Add(V3(m[0][3], m[1][3], m[2][3]))
}

// MulVec3Dir transforms v as a direction, ignoring translation.
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return V3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row][col]
}
