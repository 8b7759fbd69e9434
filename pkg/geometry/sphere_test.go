package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{
			name:     "Through the center",
			ray:      core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)),
			expected: []float64{4, 6},
		},
		{
			name:     "Tangent yields a doubled root",
			ray:      core.NewRay(core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1)),
			expected: []float64{5, 5},
		},
		{
			name:     "Miss",
			ray:      core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "Origin inside the sphere",
			ray:      core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1)),
			expected: []float64{-1, 1},
		},
		{
			name:     "Sphere behind the ray",
			ray:      core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1)),
			expected: []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere()
			got := sphere.Intersect(tt.ray)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if !core.EqualFloats(got[i], tt.expected[i]) {
					t.Errorf("Expected t[%d] = %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere()
	scaled.SetTransform(core.Scaling(2, 2, 2))
	got := scaled.Intersect(ray)
	if len(got) != 2 || !core.EqualFloats(got[0], 3) || !core.EqualFloats(got[1], 7) {
		t.Errorf("Expected scaled sphere to intersect at [3, 7], got %v", got)
	}

	translated := NewSphere()
	translated.SetTransform(core.Translation(5, 0, 0))
	if got := translated.Intersect(ray); len(got) != 0 {
		t.Errorf("Expected translated sphere to be missed, got %v", got)
	}
}

func TestSphere_TransformDefaultsToIdentity(t *testing.T) {
	sphere := NewSphere()
	if !sphere.Transform().Equals(core.Identity(4)) {
		t.Errorf("Expected identity transform, got %v", sphere.Transform())
	}

	transform := core.Translation(2, 3, 4)
	sphere.SetTransform(transform)
	if !sphere.Transform().Equals(transform) {
		t.Errorf("Expected stored transform %v, got %v", transform, sphere.Transform())
	}
}

func TestSphere_SetTransformSingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for non-invertible transform")
		}
	}()
	NewSphere().SetTransform(core.Scaling(0, 0, 0))
}

func TestSphere_Material(t *testing.T) {
	sphere := NewSphere()
	if !sphere.Material().Equals(material.NewMaterial()) {
		t.Errorf("Expected default material, got %v", sphere.Material())
	}

	m := material.NewMaterial()
	m.Ambient = 1
	sphere.SetMaterial(m)
	if !sphere.Material().Equals(m) {
		t.Errorf("Expected assigned material, got %v", sphere.Material())
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sqrt3over3 := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{name: "On the x axis", point: core.NewPoint(1, 0, 0), expected: core.NewVector(1, 0, 0)},
		{name: "On the y axis", point: core.NewPoint(0, 1, 0), expected: core.NewVector(0, 1, 0)},
		{name: "On the z axis", point: core.NewPoint(0, 0, 1), expected: core.NewVector(0, 0, 1)},
		{
			name:     "At a nonaxial point",
			point:    core.NewPoint(sqrt3over3, sqrt3over3, sqrt3over3),
			expected: core.NewVector(sqrt3over3, sqrt3over3, sqrt3over3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere()
			got := sphere.NormalAt(tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected normal %v, got %v", tt.expected, got)
			}
			if !got.Equals(got.Normalize()) {
				t.Errorf("Expected normal to already be normalized, got %v", got)
			}
		})
	}
}

func TestSphere_NormalAtTranslated(t *testing.T) {
	sphere := NewSphere()
	sphere.SetTransform(core.Translation(0, 1, 0))

	got := sphere.NormalAt(core.NewPoint(0, 1+math.Sqrt2/2, -math.Sqrt2/2))
	expected := core.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2)
	if !got.Equals(expected) {
		t.Errorf("Expected normal %v, got %v", expected, got)
	}
}

func TestSphere_NormalAtScaledAndRotated(t *testing.T) {
	sphere := NewSphere()
	sphere.SetTransform(core.Transformation().RotateZ(math.Pi / 5).Scale(1, 0.5, 1))

	got := sphere.NormalAt(core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))

	// Reference values rounded to five places
	const tolerance = 1e-5
	expected := core.NewVector(0, 0.97014, -0.24254)
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
