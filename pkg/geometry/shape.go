package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape is the interface all renderable surfaces implement. A shape owns
// the transform placing it in the world and the material describing how
// light reflects off it.
type Shape interface {
	// Transform returns the shape's object-to-world transform
	Transform() core.Matrix
	// SetTransform replaces the transform and refreshes any state
	// derived from it
	SetTransform(transform core.Matrix)
	// Material returns the shape's surface material
	Material() material.Material
	// SetMaterial replaces the shape's surface material
	SetMaterial(m material.Material)
	// Intersect returns the ray parameters at which the world-space ray
	// strikes the shape, unordered and possibly empty
	Intersect(ray core.Ray) []float64
	// NormalAt returns the unit surface normal at a world-space point
	// assumed to lie on the shape
	NormalAt(worldPoint core.Tuple) core.Tuple
}
