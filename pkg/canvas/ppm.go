package canvas

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

const (
	// ppmMaxValue is the largest channel value in the P3 header
	ppmMaxValue = 255
	// ppmLineLimit is the longest physical line some PPM readers accept
	ppmLineLimit = 70
)

// PPM encodes the canvas as a plain-text P3 image: a three-line header
// followed by one scanline per canvas row. Channels are clamped to
// [0, 1], scaled to 0..255 and rounded up. Scanlines longer than 70
// characters split between values, and the output always ends with a
// newline.
func (c *Canvas) PPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n%d\n", c.width, c.height, ppmMaxValue)
	for y := 0; y < c.height; y++ {
		c.writeScanline(&b, y)
	}
	return b.String()
}

// writeScanline emits row y as space-separated channel values, wrapping
// to a fresh line whenever appending the next value would pass the limit
func (c *Canvas) writeScanline(b *strings.Builder, y int) {
	line := ""
	for x := 0; x < c.width; x++ {
		pixel := c.PixelAt(x, y).Clamp()
		for _, channel := range [3]float64{pixel.R, pixel.G, pixel.B} {
			// The Epsilon guard keeps float noise like 0.8*255 =
			// 204.0000000000000113 from ceiling to 205
			value := strconv.Itoa(int(math.Ceil(channel*ppmMaxValue - core.Epsilon)))
			switch {
			case line == "":
				line = value
			case len(line)+1+len(value) > ppmLineLimit:
				b.WriteString(line)
				b.WriteByte('\n')
				line = value
			default:
				line += " " + value
			}
		}
	}
	b.WriteString(line)
	b.WriteByte('\n')
}

// WriteFile encodes the canvas and writes it to path. An I/O failure
// comes back as an error wrapping the underlying cause.
func (c *Canvas) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(c.PPM()), 0644); err != nil {
		return fmt.Errorf("failed to write canvas to %s: %w", path, err)
	}
	return nil
}
