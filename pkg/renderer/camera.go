package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Config describes the pinhole projection: every ray leaves the eye and
// passes through a wall of world-space cells behind the scene, one cell
// per canvas pixel
type Config struct {
	Width    int        // Canvas width in pixels
	Height   int        // Canvas height in pixels
	Eye      core.Tuple // Ray origin, a point
	WallZ    float64    // Z position of the projection wall
	WallSize float64    // World-space edge length of the wall
}

// DefaultConfig returns the standard square framing for the built-in scenes
func DefaultConfig() Config {
	return Config{
		Width:    400,
		Height:   400,
		Eye:      core.NewPoint(0, 0, -5),
		WallZ:    10,
		WallSize: 7,
	}
}

// MergeConfig overlays the non-zero fields of override onto base
func MergeConfig(base, override Config) Config {
	merged := base
	if override.Width > 0 {
		merged.Width = override.Width
	}
	if override.Height > 0 {
		merged.Height = override.Height
	}
	if override.Eye.IsPoint() {
		merged.Eye = override.Eye
	}
	if override.WallZ != 0 {
		merged.WallZ = override.WallZ
	}
	if override.WallSize > 0 {
		merged.WallSize = override.WallSize
	}
	return merged
}

// Camera converts canvas pixel coordinates into world-space rays
type Camera struct {
	config     Config
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera from the projection config. Pixels are
// square: the wall size spans the canvas width and the wall's height
// follows from the aspect ratio.
func NewCamera(config Config) *Camera {
	if config.Width <= 0 || config.Height <= 0 {
		panic(fmt.Sprintf("camera dimensions must be positive, got %dx%d", config.Width, config.Height))
	}
	pixelSize := config.WallSize / float64(config.Width)
	return &Camera{
		config:     config,
		pixelSize:  pixelSize,
		halfWidth:  config.WallSize / 2,
		halfHeight: pixelSize * float64(config.Height) / 2,
	}
}

// Width returns the canvas width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the canvas height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}

// RayForPixel returns the ray from the eye through the wall cell behind
// canvas pixel (x, y). Canvas y grows downward while world y grows
// upward, so the row flips sign. The direction comes back normalized.
func (c *Camera) RayForPixel(x, y int) core.Ray {
	worldX := -c.halfWidth + c.pixelSize*float64(x)
	worldY := c.halfHeight - c.pixelSize*float64(y)
	target := core.NewPoint(worldX, worldY, c.config.WallZ)
	direction := target.Subtract(c.config.Eye).Normalize()
	return core.NewRay(c.config.Eye, direction)
}
