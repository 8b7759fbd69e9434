package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Scene contains the elements needed for rendering: a single point light
// and the shapes it illuminates
type Scene struct {
	Light  lights.PointLight
	Shapes []geometry.Shape
}

// NewShadedSphereScene creates the classic single-sphere scene: a purple
// sphere lit from above and to the left
func NewShadedSphereScene() *Scene {
	sphere := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = core.NewColor(1, 0.2, 1)
	sphere.SetMaterial(m)

	return &Scene{
		Light:  lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		Shapes: []geometry.Shape{sphere},
	}
}

// NewSilhouetteScene creates a flat red sphere. Full ambient with no
// diffuse or specular shades every hit identically, leaving only the
// sphere's outline against the black background.
func NewSilhouetteScene() *Scene {
	sphere := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = core.Red
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0
	sphere.SetMaterial(m)

	return &Scene{
		Light:  lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		Shapes: []geometry.Shape{sphere},
	}
}

// NewSquashedSphereScene creates the shaded sphere flattened along y
func NewSquashedSphereScene() *Scene {
	s := NewShadedSphereScene()
	s.Shapes[0].SetTransform(core.Scaling(1, 0.5, 1))
	return s
}

// NewShearedSphereScene creates the shaded sphere sheared sideways and
// shrunk along x
func NewShearedSphereScene() *Scene {
	s := NewShadedSphereScene()
	s.Shapes[0].SetTransform(core.Transformation().
		Scale(0.5, 1, 1).
		Shear(1, 0, 0, 0, 0, 0))
	return s
}
