package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/todo/internal/ui/theme"
	"github.com/ldi/todo/pkg/models"
)

var (
	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	cursorMark = "▌"
)

// TaskCard renders one task: status badge, title, description and due
// date inside a border coloured by status.
type TaskCard struct {
	Task     models.Task
	Width    int
	Selected bool
	Theme    theme.Theme
}

func (c TaskCard) View() string {
	statusColor := c.Theme.StatusColor(c.Task.Status)

	innerWidth := c.Width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	badge := badgeStyle.
		Foreground(statusColor).
		BorderForeground(statusColor).
		Render(c.Task.Status.String())

	titleWidth := innerWidth - lipgloss.Width(badge) - 1
	if titleWidth < 1 {
		titleWidth = 1
	}
	title := cardTitleStyle.
		Foreground(c.Theme.Text).
		Width(titleWidth).
		Render(c.Task.Title)
	top := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge)

	lines := []string{top}
	if c.Task.Description != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(c.Theme.Muted).
			Width(innerWidth).
			Render(c.Task.Description))
	}
	lines = append(lines, lipgloss.NewStyle().
		Foreground(c.Theme.Subtle).
		Render(fmt.Sprintf("Due %s", c.Task.DueDate)))

	border := lipgloss.NormalBorder()
	if c.Selected {
		border = lipgloss.ThickBorder()
	}
	card := lipgloss.NewStyle().
		Border(border, false, false, false, true).
		BorderForeground(statusColor).
		Background(c.Theme.Surface).
		Padding(0, 1).
		Width(innerWidth + 2).
		Render(strings.Join(lines, "\n"))

	if c.Selected {
		return lipgloss.NewStyle().Foreground(c.Theme.Accent).Render(cursorMark) + card
	}
	return " " + card
}
