package physics

import "math"

// Vec is a 2D velocity vector measured in cells per millisecond.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude, avoiding the square root.
func (v Vec) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Vec{}
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}
