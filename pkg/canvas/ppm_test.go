package canvas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPPM_Header(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(c.PPM(), "\n")

	if len(lines) < 3 || lines[0] != "P3" || lines[1] != "5 3" || lines[2] != "255" {
		t.Errorf("Expected header [P3, 5 3, 255], got %v", lines[:3])
	}
}

func TestPPM_PixelData(t *testing.T) {
	c := NewCanvas(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.PPM(), "\n")
	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}

	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Expected scanline %d to be %q, got %q", i, want, lines[3+i])
		}
	}
}

func TestPPM_LongScanlinesWrap(t *testing.T) {
	c := NewCanvas(10, 2)
	c.Fill(core.NewColor(1, 0.8, 0.6))

	lines := strings.Split(c.PPM(), "\n")
	expected := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}

	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Expected line %d to be %q, got %q", 3+i, want, lines[3+i])
		}
	}
	for i, line := range lines {
		if len(line) > 70 {
			t.Errorf("Expected every line within 70 characters, line %d has %d", i, len(line))
		}
	}
}

func TestPPM_FractionalChannelsRoundUp(t *testing.T) {
	c := NewCanvas(1, 1)
	// 0.004 x 255 = 1.02, which must round up to 2, not to 1
	c.WritePixel(0, 0, core.NewColor(0.004, 0, 0.999))

	lines := strings.Split(c.PPM(), "\n")
	if lines[3] != "2 0 255" {
		t.Errorf("Expected scanline %q, got %q", "2 0 255", lines[3])
	}
}

func TestPPM_EndsWithNewline(t *testing.T) {
	c := NewCanvas(5, 3)
	if ppm := c.PPM(); !strings.HasSuffix(ppm, "\n") {
		t.Errorf("Expected PPM data to end with a newline")
	}
}

func TestCanvas_WriteFile(t *testing.T) {
	c := NewCanvas(2, 2)
	c.WritePixel(0, 0, core.Red)
	path := filepath.Join(t.TempDir(), "render.ppm")

	if err := c.WriteFile(path); err != nil {
		t.Fatalf("Expected write to succeed, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected to read the file back, got %v", err)
	}
	if string(data) != c.PPM() {
		t.Errorf("Expected file contents to match the PPM encoding")
	}
}

func TestCanvas_WriteFileFailure(t *testing.T) {
	c := NewCanvas(2, 2)
	path := filepath.Join(t.TempDir(), "missing", "render.ppm")

	err := c.WriteFile(path)
	if err == nil {
		t.Fatalf("Expected an error for an unwritable path")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to mention the path, got %v", err)
	}
}
