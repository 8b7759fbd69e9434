package canvas

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a rectangular grid of pixels, indexed by (x, y) with x
// growing rightward and y growing downward from the top-left corner.
// Pixels start out black and hold unclamped colors until encoding.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a width x height canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas dimensions must be positive, got %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) checkBounds(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("pixel (%d, %d) out of range for %dx%d canvas", x, y, c.width, c.height))
	}
}

// WritePixel stores a color at (x, y)
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	c.checkBounds(x, y)
	c.pixels[y*c.width+x] = color
}

// PixelAt returns the color stored at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	c.checkBounds(x, y)
	return c.pixels[y*c.width+x]
}

// Fill sets every pixel to the given color
func (c *Canvas) Fill(color core.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}
