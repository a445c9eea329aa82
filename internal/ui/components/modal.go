package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/todo/internal/ui/theme"
)

var (
	modalHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)
)

// EditModal frames the edit form. Fields are already-rendered inputs.
type EditModal struct {
	Title  string
	Fields []string
	Width  int
	Theme  theme.Theme
}

func (m EditModal) View() string {
	var b strings.Builder
	b.WriteString(modalHeaderStyle.Foreground(m.Theme.Text).Render(m.Title))
	b.WriteString("\n")

	for _, f := range m.Fields {
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	save := buttonStyle.Background(m.Theme.Button).Render("Save (enter)")
	cancel := buttonStyle.Background(m.Theme.Button).Render("Cancel (esc)")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, save, "  ", cancel))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Button).
		Background(m.Theme.Modal).
		Padding(1, 2).
		Width(m.Width).
		Render(b.String())
}

// Alert is a blocking message box dismissed by any key.
type Alert struct {
	Title   string
	Message string
	Width   int
	Theme   theme.Theme
}

func (a Alert) View() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(a.Theme.Error).Render(a.Title)
	body := lipgloss.NewStyle().Foreground(a.Theme.Text).Render(a.Message)
	hint := lipgloss.NewStyle().Foreground(a.Theme.Subtle).Italic(true).Render("press any key")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.Theme.Error).
		Background(a.Theme.Modal).
		Padding(1, 2).
		Width(a.Width).
		Render(header + "\n\n" + body + "\n\n" + hint)
}
