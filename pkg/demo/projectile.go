package demo

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Projectile tracks a point moving under simple ballistic physics
type Projectile struct {
	Position core.Tuple // A point
	Velocity core.Tuple // A vector, distance per unit time
}

// Environment holds the forces acting on a projectile every tick
type Environment struct {
	Gravity core.Tuple // Constant downward acceleration
	Wind    core.Tuple // Constant horizontal acceleration
}

// Tick advances the projectile by dt: position moves along the velocity,
// and gravity and wind bend the velocity for the next step
func (p Projectile) Tick(env Environment, dt float64) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity.Multiply(dt)),
		Velocity: p.Velocity.Add(env.Gravity.Add(env.Wind).Multiply(dt)),
	}
}

// coords rounds the projectile's position to canvas column and row.
// Canvas y grows downward while the trajectory's y grows upward, so the
// row flips against the canvas height.
func (p Projectile) coords(c *canvas.Canvas) (int, int) {
	x := int(math.Round(p.Position.X))
	y := c.Height() - 1 - int(math.Round(p.Position.Y))
	return x, y
}

// inBounds reports whether the projectile lands on the canvas
func (p Projectile) inBounds(c *canvas.Canvas) bool {
	x, y := p.coords(c)
	return x >= 0 && x < c.Width() && y >= 0 && y < c.Height()
}

// Trajectory launches a projectile from the lower-left corner and plots
// each tick of its arc in red until it leaves the canvas
func Trajectory(width, height int) *canvas.Canvas {
	c := canvas.NewCanvas(width, height)

	env := Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}
	p := Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1.8, 0).Normalize().Multiply(11.25),
	}

	for p.inBounds(c) {
		x, y := p.coords(c)
		c.WritePixel(x, y, core.Red)
		p = p.Tick(env, 0.1)
	}
	return c
}
