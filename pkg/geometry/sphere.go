package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents the unit sphere at the object-space origin, placed in
// the world by its transform. The inverse transform is cached alongside
// the transform because intersection and normal tests need it for every ray.
type Sphere struct {
	transform        core.Matrix
	inverseTransform core.Matrix
	mat              material.Material
}

// NewSphere creates a unit sphere with the identity transform and the
// default material
func NewSphere() *Sphere {
	return &Sphere{
		transform:        core.Identity(4),
		inverseTransform: core.Identity(4),
		mat:              material.NewMaterial(),
	}
}

// Transform returns the sphere's object-to-world transform
func (s *Sphere) Transform() core.Matrix {
	return s.transform
}

// SetTransform replaces the transform and recomputes the cached inverse
// in the same step, so the two can never disagree. Panics if the
// transform is not invertible.
func (s *Sphere) SetTransform(transform core.Matrix) {
	inverse := transform.Inverse()
	s.transform = transform
	s.inverseTransform = inverse
}

// Material returns the sphere's surface material
func (s *Sphere) Material() material.Material {
	return s.mat
}

// SetMaterial replaces the sphere's surface material
func (s *Sphere) SetMaterial(m material.Material) {
	s.mat = m
}

// Intersect returns the ray parameters where the world-space ray strikes
// the sphere: both quadratic roots in ascending order, equal for a
// tangent, or none for a miss
func (s *Sphere) Intersect(ray core.Ray) []float64 {
	// Move the ray into object space so the quadratic below can assume a
	// unit sphere at the origin
	objectRay := ray.Transform(s.inverseTransform)

	// Vector from the sphere's center to the ray origin
	sphereToRay := objectRay.Origin.Subtract(core.Origin())

	// Quadratic equation coefficients: at² + bt + c = 0
	a := objectRay.Direction.Dot(objectRay.Direction)
	b := 2 * objectRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

// NormalAt returns the unit surface normal at a world-space point on the
// sphere. The object-space normal transforms to world space by the
// transpose of the inverse, which keeps it perpendicular under
// non-uniform scaling.
func (s *Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.inverseTransform.MultiplyTuple(worldPoint)
	objectNormal := objectPoint.Subtract(core.Origin())
	worldNormal := s.inverseTransform.Transpose().MultiplyTuple(objectNormal)
	// The transpose smears the transform's translation into w; reset it
	// so the result is a proper vector before normalizing
	worldNormal.W = 0
	return worldNormal.Normalize()
}
