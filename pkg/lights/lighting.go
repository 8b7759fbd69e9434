package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflection model at a surface point: the
// sum of the ambient, diffuse and specular contributions of one light.
// The eye and normal vectors must be unit length. The result is left
// unclamped so callers can combine contributions before encoding.
func Lighting(m material.Material, light PointLight, point, eye, normal core.Tuple) core.Color {
	// Combine the surface color with the light's intensity
	effectiveColor := m.Color.Blend(light.Intensity)

	ambient := effectiveColor.Multiply(m.Ambient)

	// Cosine of the angle between the light vector and the normal. A
	// non-positive value means the light is on the other side of the
	// surface, leaving only the ambient term.
	lightVector := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightVector.Dot(normal)
	if lightDotNormal <= 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// Cosine of the angle between the reflection vector and the eye. A
	// non-positive value means the reflection points away from the eye,
	// so there is no specular highlight.
	reflectVector := lightVector.Negate().Reflect(normal)
	reflectDotEye := reflectVector.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
