package math3d

import "math"

// Vec2 represents a 2D vector. Screen-space points use it too.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Get returns component i (0=X, 1=Y).
func (a Vec2) Get(i int) (float64, error) {
	switch i {
	case 0:
		return a.X, nil
	case 1:
		return a.Y, nil
	}
	return 0, &IndexError{Index: i, Len: 2}
}

// Set assigns component i (0=X, 1=Y).
func (a *Vec2) Set(i int, v float64) error {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		return &IndexError{Index: i, Len: 2}
	}
	return nil
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b
// lifted to z=0. Its sign gives the winding of (a, b).
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize returns the unit vector, or the zero vector when the length is zero.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l <= 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}
