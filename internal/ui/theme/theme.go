// Package theme holds the light and dark palettes of the task list.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/todo/pkg/models"
)

type Theme struct {
	Dark bool

	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Input      lipgloss.Color
	Modal      lipgloss.Color
	Accent     lipgloss.Color
	Button     lipgloss.Color
	Error      lipgloss.Color
}

var Light = Theme{
	Background: lipgloss.Color("#F5F5F5"),
	Surface:    lipgloss.Color("#FFFFFF"),
	Text:       lipgloss.Color("#000000"),
	Muted:      lipgloss.Color("#666666"),
	Subtle:     lipgloss.Color("#999999"),
	Input:      lipgloss.Color("#FFFFFF"),
	Modal:      lipgloss.Color("#FFFFFF"),
	Accent:     lipgloss.Color("#D8BFD8"),
	Button:     lipgloss.Color("#CBAACB"),
	Error:      lipgloss.Color("#F08080"),
}

var Dark = Theme{
	Dark:       true,
	Background: lipgloss.Color("#222222"),
	Surface:    lipgloss.Color("#333333"),
	Text:       lipgloss.Color("#FFFFFF"),
	Muted:      lipgloss.Color("#CCCCCC"),
	Subtle:     lipgloss.Color("#BBBBBB"),
	Input:      lipgloss.Color("#444444"),
	Modal:      lipgloss.Color("#444444"),
	Accent:     lipgloss.Color("#D8BFD8"),
	Button:     lipgloss.Color("#CBAACB"),
	Error:      lipgloss.Color("#F08080"),
}

// Status colours are shared by both palettes.
var statusColors = map[models.TaskStatus]lipgloss.Color{
	models.TaskStatusInProgress: lipgloss.Color("#4D7CFE"),
	models.TaskStatusPastDue:    lipgloss.Color("#F08080"),
	models.TaskStatusCompleted:  lipgloss.Color("#90EE90"),
}

func For(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

func (t Theme) StatusColor(s models.TaskStatus) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return t.Subtle
}

// Icon is the indicator shown next to the theme switch.
func (t Theme) Icon() string {
	if t.Dark {
		return "🌙"
	}
	return "🔆"
}
