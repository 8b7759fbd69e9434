package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Material holds the Phong reflectance attributes of a surface
type Material struct {
	Color     core.Color // Base surface color
	Ambient   float64    // Background light contribution, typically 0..1
	Diffuse   float64    // Matte reflection from direct light, typically 0..1
	Specular  float64    // Mirror-like highlight strength, typically 0..1
	Shininess float64    // Highlight tightness, ~10 (large) to ~200 (small)
}

// NewMaterial creates the default material: white with the standard
// Phong coefficients
func NewMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Equals compares two materials attribute-wise within Epsilon
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		core.EqualFloats(m.Ambient, other.Ambient) &&
		core.EqualFloats(m.Diffuse, other.Diffuse) &&
		core.EqualFloats(m.Specular, other.Specular) &&
		core.EqualFloats(m.Shininess, other.Shininess)
}
