package lights

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestLighting(t *testing.T) {
	m := material.NewMaterial()
	position := core.Origin()
	normal := core.NewVector(0, 0, -1)

	tests := []struct {
		name     string
		eye      core.Tuple
		light    PointLight
		expected core.Color
	}{
		{
			name:  "Eye directly between light and surface",
			eye:   core.NewVector(0, 0, -1),
			light: NewPointLight(core.NewPoint(0, 0, -10), core.White),
			// Full ambient, diffuse and specular: 0.1 + 0.9 + 0.9
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:  "Eye offset 45 degrees loses the specular highlight",
			eye:   core.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2),
			light: NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:  "Light offset 45 degrees dims the diffuse term",
			eye:   core.NewVector(0, 0, -1),
			light: NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.NewColor(
				0.1+0.9*math.Sqrt2/2,
				0.1+0.9*math.Sqrt2/2,
				0.1+0.9*math.Sqrt2/2,
			),
		},
		{
			name:  "Eye in the path of the reflection",
			eye:   core.NewVector(0, -math.Sqrt2/2, -math.Sqrt2/2),
			light: NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.NewColor(
				1.0+0.9*math.Sqrt2/2,
				1.0+0.9*math.Sqrt2/2,
				1.0+0.9*math.Sqrt2/2,
			),
		},
		{
			name:  "Light behind the surface leaves only ambient",
			eye:   core.NewVector(0, 0, -1),
			light: NewPointLight(core.NewPoint(0, 0, 10), core.White),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lighting(m, tt.light, position, tt.eye, normal)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestLighting_ColoredSurfaceAndLight(t *testing.T) {
	m := material.NewMaterial()
	m.Color = core.NewColor(1, 0.2, 1)
	light := NewPointLight(core.NewPoint(0, 0, -10), core.NewColor(0.5, 0.5, 0.5))

	result := Lighting(m, light, core.Origin(), core.NewVector(0, 0, -1), core.NewVector(0, 0, -1))

	// Ambient and diffuse blend the surface color with the light's
	// intensity; specular only carries the light's intensity.
	expected := core.NewColor(
		0.5*1.0*(0.1+0.9)+0.5*0.9,
		0.5*0.2*(0.1+0.9)+0.5*0.9,
		0.5*1.0*(0.1+0.9)+0.5*0.9,
	)
	if !result.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestLighting_ResultIsUnclamped(t *testing.T) {
	m := material.NewMaterial()
	light := NewPointLight(core.NewPoint(0, 0, -10), core.White)

	result := Lighting(m, light, core.Origin(), core.NewVector(0, 0, -1), core.NewVector(0, 0, -1))
	if result.R <= 1 {
		t.Errorf("Expected unclamped channel above 1, got %v", result.R)
	}
}

func TestNewPointLight(t *testing.T) {
	light := NewPointLight(core.NewPoint(0, 0, 0), core.White)
	if !light.Position.Equals(core.Origin()) {
		t.Errorf("Expected position at the origin, got %v", light.Position)
	}
	if !light.Intensity.Equals(core.White) {
		t.Errorf("Expected white intensity, got %v", light.Intensity)
	}
}
