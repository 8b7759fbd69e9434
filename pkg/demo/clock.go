package demo

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Clock plots the twelve hour marks of a clock face on a square canvas.
// Each mark starts at the origin and reaches its place through a fluent
// transform chain: out to the radius, around the face, then into the
// center of the canvas.
func Clock(size int) *canvas.Canvas {
	c := canvas.NewCanvas(size, size)

	radius := float64(size) * 0.4
	center := float64(size) / 2
	marks := 12

	for i := 0; i < marks; i++ {
		angle := float64(i) * (2 * math.Pi / float64(marks))
		transform := core.Transformation().
			Translate(radius, 0, 0).
			RotateZ(angle).
			Translate(center, center, 0)

		position := transform.MultiplyTuple(core.Origin())
		c.WritePixel(int(position.X), int(position.Y), core.White)
	}
	return c
}
