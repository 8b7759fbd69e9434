package core

import (
	"fmt"
	"math"
)

// Tuple represents a homogeneous coordinate quadruple: a point in space
// when W is 1, a direction vector when W is 0. Keeping both in one type
// lets 4x4 transforms apply to either without special cases.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple representing a location (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple representing a direction (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Origin returns the point at (0, 0, 0)
func Origin() Tuple {
	return NewPoint(0, 0, 0)
}

// IsPoint reports whether the tuple is a point (W=1)
func (t Tuple) IsPoint() bool {
	return EqualFloats(t.W, 1)
}

// IsVector reports whether the tuple is a vector (W=0)
func (t Tuple) IsVector() bool {
	return EqualFloats(t.W, 0)
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return EqualFloats(t.X, other.X) &&
		EqualFloats(t.Y, other.Y) &&
		EqualFloats(t.Z, other.Z) &&
		EqualFloats(t.W, other.W)
}

// Add returns the component-wise sum of two tuples.
// Point+vector moves the point, vector+vector combines directions.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
// Point-point yields the vector between them.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return t.Multiply(1 / scalar)
}

// Hadamard returns the component-wise product of two tuples
func (t Tuple) Hadamard(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// Magnitude returns the length of the tuple. W carries no spatial
// extent, so only the x, y, z components contribute.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit tuple in the same direction.
// Normalizing a zero-magnitude tuple is a programmer error.
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		panic(fmt.Sprintf("cannot normalize zero-magnitude tuple %v", t))
	}
	return t.Divide(magnitude)
}

// Dot returns the dot product of two vectors.
// The geometric meaning only holds for vectors, so points are rejected.
func (t Tuple) Dot(other Tuple) float64 {
	if !t.IsVector() || !other.IsVector() {
		panic(fmt.Sprintf("dot product requires two vectors, got %v and %v", t, other))
	}
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	if !t.IsVector() || !other.IsVector() {
		panic(fmt.Sprintf("cross product requires two vectors, got %v and %v", t, other))
	}
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect mirrors the vector about the given surface normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// String renders the tuple with its point or vector role for messages
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, w=%g)", t.X, t.Y, t.Z, t.W)
	}
}
