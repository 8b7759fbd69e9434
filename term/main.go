package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/df07/go-phong-raytracer/term/preview"
)

func main() {
	program := tea.NewProgram(preview.NewModel(), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Error running preview: %v", err)
		os.Exit(1)
	}
}
