package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight represents a light source with a position but no size,
// radiating equally in every direction
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
