package core

import "math"

// Transformation returns the 4x4 identity matrix, the seed for fluent
// transform chains
func Transformation() Matrix {
	return Identity(4)
}

// Translation builds a transform that moves points by (x, y, z).
// Vectors pass through unchanged because the offsets live in the fourth
// column, which only W=1 tuples pick up.
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.elements[0][3] = x
	m.elements[1][3] = y
	m.elements[2][3] = z
	return m
}

// Scaling builds a transform that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.elements[0][0] = x
	m.elements[1][1] = y
	m.elements[2][2] = z
	return m
}

// RotationX builds a rotation about the x axis by radians
func RotationX(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity(4)
	m.elements[1][1] = cos
	m.elements[1][2] = -sin
	m.elements[2][1] = sin
	m.elements[2][2] = cos
	return m
}

// RotationY builds a rotation about the y axis by radians
func RotationY(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity(4)
	m.elements[0][0] = cos
	m.elements[0][2] = sin
	m.elements[2][0] = -sin
	m.elements[2][2] = cos
	return m
}

// RotationZ builds a rotation about the z axis by radians
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity(4)
	m.elements[0][0] = cos
	m.elements[0][1] = -sin
	m.elements[1][0] = sin
	m.elements[1][1] = cos
	return m
}

// Shearing builds a transform that slants each coordinate in proportion
// to the other two: xy is how much x moves per unit of y, and so on
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity(4)
	m.elements[0][1] = xy
	m.elements[0][2] = xz
	m.elements[1][0] = yx
	m.elements[1][2] = yz
	m.elements[2][0] = zx
	m.elements[2][1] = zy
	return m
}

// The fluent methods below left-multiply a new transform onto the
// receiver, so a chain reads in application order:
// Transformation().RotateX(a).Scale(s, s, s).Translate(x, y, z)
// rotates first and translates last.

// Translate returns the receiver followed by a translation
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale returns the receiver followed by a scaling
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX returns the receiver followed by a rotation about the x axis
func (m Matrix) RotateX(radians float64) Matrix {
	return RotationX(radians).Multiply(m)
}

// RotateY returns the receiver followed by a rotation about the y axis
func (m Matrix) RotateY(radians float64) Matrix {
	return RotationY(radians).Multiply(m)
}

// RotateZ returns the receiver followed by a rotation about the z axis
func (m Matrix) RotateZ(radians float64) Matrix {
	return RotationZ(radians).Multiply(m)
}

// Shear returns the receiver followed by a shearing
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
