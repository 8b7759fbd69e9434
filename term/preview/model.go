package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// luminance ramp from darkest to brightest character
const luminance = " .,-~:;=!*#$@"

// Model is a bubbletea model that previews the shaded-sphere scene as
// ASCII art at the current terminal size, re-rendering on every resize
type Model struct {
	scene  *scene.Scene
	width  int
	height int
	frame  string
}

// NewModel creates a preview of the shaded-sphere scene. The first
// frame renders when bubbletea reports the window size.
func NewModel() Model {
	return Model{scene: scene.NewShadedSphereScene()}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model: resizes re-render the frame, q or ctrl+c quit
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.frame = m.renderFrame()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.frame == "" {
		return "Waiting for terminal size..."
	}
	return m.frame + "\nq to quit"
}

// renderFrame traces one ray per character cell and maps the shaded
// color to the luminance ramp. Terminal cells are about twice as tall
// as wide, so the camera renders two pixel rows per character row to
// keep the sphere round.
func (m Model) renderFrame() string {
	cols := m.width
	rows := m.height - 1 // Last line holds the quit hint
	if cols < 2 || rows < 2 {
		return ""
	}

	camera := renderer.NewCamera(renderer.MergeConfig(renderer.DefaultConfig(), renderer.Config{
		Width:  cols,
		Height: rows * 2,
	}))
	r := renderer.NewRenderer(m.scene, camera, discardLogger{})

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			color := r.ColorAt(col, row*2)
			level := color.Clamp().Luminance()
			index := int(level * float64(len(luminance)-1))
			b.WriteByte(luminance[index])
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// discardLogger keeps render logging off the interactive screen
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
