package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer casts one ray per canvas pixel and shades the nearest hit
// with the Phong model
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and camera.
// A nil logger falls back to stdout.
func NewRenderer(s *scene.Scene, camera *Camera, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{scene: s, camera: camera, logger: logger}
}

// Render draws the scene one scanline at a time on the calling goroutine
func (r *Renderer) Render() (*canvas.Canvas, RenderStats) {
	start := time.Now()
	c := canvas.NewCanvas(r.camera.Width(), r.camera.Height())

	hits := 0
	for y := 0; y < c.Height(); y++ {
		hits += r.renderScanline(c, y)
	}

	stats := RenderStats{
		TotalPixels: c.Width() * c.Height(),
		Hits:        hits,
		Duration:    time.Since(start),
	}
	r.logger.Printf("Rendered %dx%d in %v (%d/%d pixels hit)\n",
		c.Width(), c.Height(), stats.Duration, stats.Hits, stats.TotalPixels)
	return c, stats
}

// RenderParallel distributes scanlines across a worker pool. Every row
// is written by exactly one worker, so the canvas comes out identical
// to a sequential render.
func (r *Renderer) RenderParallel(numWorkers int) (*canvas.Canvas, RenderStats) {
	start := time.Now()
	c := canvas.NewCanvas(r.camera.Width(), r.camera.Height())

	pool := NewWorkerPool(r, c.Height(), numWorkers)
	r.logger.Printf("Rendering %dx%d with %d workers...\n", c.Width(), c.Height(), pool.GetNumWorkers())

	pool.Start()
	for y := 0; y < c.Height(); y++ {
		pool.SubmitTask(ScanlineTask{Y: y, Canvas: c})
	}
	pool.Stop()

	hits := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		hits += result.Hits
	}

	stats := RenderStats{
		TotalPixels: c.Width() * c.Height(),
		Hits:        hits,
		Duration:    time.Since(start),
	}
	r.logger.Printf("Rendered %dx%d in %v (%d/%d pixels hit)\n",
		c.Width(), c.Height(), stats.Duration, stats.Hits, stats.TotalPixels)
	return c, stats
}

// Progress reports completed scanlines during a streaming render
type Progress struct {
	RowsCompleted int
	TotalRows     int
}

// Result pairs a finished canvas with its render statistics
type Result struct {
	Canvas *canvas.Canvas
	Stats  RenderStats
}

// RenderStreaming renders in the background with channel-based
// communication. Progress events arrive as rows finish and the final
// canvas arrives on the result channel. Cancelling the context abandons
// the render and surfaces ctx.Err() on the error channel.
func (r *Renderer) RenderStreaming(ctx context.Context, numWorkers int) (<-chan Progress, <-chan Result, <-chan error) {
	progressChan := make(chan Progress, 16)
	resultChan := make(chan Result, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(progressChan)
		defer close(resultChan)
		defer close(errChan)

		start := time.Now()
		c := canvas.NewCanvas(r.camera.Width(), r.camera.Height())

		pool := NewWorkerPool(r, c.Height(), numWorkers)
		r.logger.Printf("Rendering %dx%d with %d workers...\n", c.Width(), c.Height(), pool.GetNumWorkers())

		pool.Start()
		for y := 0; y < c.Height(); y++ {
			pool.SubmitTask(ScanlineTask{Y: y, Canvas: c})
		}
		// The result queue is buffered for the whole canvas, so workers
		// drain even if we return early on cancellation
		go pool.Stop()

		hits := 0
		for done := 0; done < c.Height(); done++ {
			// Check if the client disconnected before waiting on the
			// next row
			select {
			case <-ctx.Done():
				r.logger.Printf("Render cancelled after %d of %d rows\n", done, c.Height())
				errChan <- ctx.Err()
				return
			default:
			}

			result, ok := pool.GetResult()
			if !ok {
				errChan <- fmt.Errorf("worker pool closed unexpectedly")
				return
			}
			hits += result.Hits

			// Drop progress events rather than stall the render
			select {
			case progressChan <- Progress{RowsCompleted: done + 1, TotalRows: c.Height()}:
			default:
			}
		}

		stats := RenderStats{
			TotalPixels: c.Width() * c.Height(),
			Hits:        hits,
			Duration:    time.Since(start),
		}
		r.logger.Printf("Rendered %dx%d in %v (%d/%d pixels hit)\n",
			c.Width(), c.Height(), stats.Duration, stats.Hits, stats.TotalPixels)

		select {
		case resultChan <- Result{Canvas: c, Stats: stats}:
		case <-ctx.Done():
			errChan <- ctx.Err()
		}
	}()

	return progressChan, resultChan, errChan
}

// ColorAt computes the color seen through canvas pixel (x, y)
func (r *Renderer) ColorAt(x, y int) core.Color {
	color, _ := r.shade(r.camera.RayForPixel(x, y))
	return color
}

// renderScanline shades row y into the canvas and returns the hit count
func (r *Renderer) renderScanline(c *canvas.Canvas, y int) int {
	hits := 0
	for x := 0; x < c.Width(); x++ {
		color, hit := r.shade(r.camera.RayForPixel(x, y))
		if hit {
			hits++
		}
		c.WritePixel(x, y, color)
	}
	return hits
}

// shade finds the visible intersection along the ray and lights it.
// Rays that miss every shape produce black.
func (r *Renderer) shade(ray core.Ray) (core.Color, bool) {
	var intersections []geometry.Intersection
	for _, shape := range r.scene.Shapes {
		intersections = append(intersections, geometry.Intersect(shape, ray)...)
	}

	hit, ok := geometry.Hit(intersections)
	if !ok {
		return core.Black, false
	}

	point := ray.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	eye := ray.Direction.Negate()
	return lights.Lighting(hit.Object.Material(), r.scene.Light, point, eye, normal), true
}
