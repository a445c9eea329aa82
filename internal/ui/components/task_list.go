package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/todo/internal/ui/theme"
	"github.com/ldi/todo/pkg/models"
)

var (
	scrollbarTrackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("236"))

	scrollbarHandleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	placeholderStyle = lipgloss.NewStyle().
				Italic(true).
				Padding(0, 1)
)

// TaskList renders task cards in a scrolling viewport and keeps the card
// under the cursor visible.
type TaskList struct {
	viewport viewport.Model
	tasks    []models.Task
	cursor   int
	focused  bool
	theme    theme.Theme
	width    int
	height   int
}

func NewTaskList(width, height int) *TaskList {
	return &TaskList{
		viewport: viewport.New(width, height),
		width:    width,
		height:   height,
		theme:    theme.Light,
	}
}

func (l *TaskList) SetSize(width, height int) {
	l.width = width
	l.height = height
	vpWidth := width
	if width > 0 {
		vpWidth = width - 1
	}
	l.viewport.Width = vpWidth
	l.viewport.Height = height
	l.updateContent()
}

// SetTasks replaces the rendered snapshot. cursor is the selected index;
// focused controls whether the selection is highlighted.
func (l *TaskList) SetTasks(tasks []models.Task, cursor int, focused bool, t theme.Theme) {
	l.tasks = tasks
	l.cursor = cursor
	l.focused = focused
	l.theme = t
	l.updateContent()
}

func (l *TaskList) updateContent() {
	if len(l.tasks) == 0 {
		l.viewport.SetContent(placeholderStyle.Foreground(l.theme.Subtle).Render("No tasks yet. Add one above."))
		l.viewport.GotoTop()
		return
	}

	var (
		cards     []string
		cursorTop int
		cursorEnd int
		line      int
	)
	for i, task := range l.tasks {
		card := TaskCard{
			Task:     task,
			Width:    l.viewport.Width,
			Selected: l.focused && i == l.cursor,
			Theme:    l.theme,
		}.View()
		h := lipgloss.Height(card)
		if i == l.cursor {
			cursorTop, cursorEnd = line, line+h
		}
		line += h + 1
		cards = append(cards, card)
	}
	l.viewport.SetContent(strings.Join(cards, "\n\n"))

	if cursorTop < l.viewport.YOffset {
		l.viewport.SetYOffset(cursorTop)
	} else if cursorEnd > l.viewport.YOffset+l.viewport.Height {
		l.viewport.SetYOffset(cursorEnd - l.viewport.Height)
	}
}

func (l *TaskList) View() string {
	if l.viewport.TotalLineCount() <= l.viewport.Height {
		return l.viewport.View()
	}

	h := l.viewport.Height
	percent := l.viewport.ScrollPercent()
	handlePos := int(float64(h-1) * percent)

	var sb strings.Builder
	for i := 0; i < h; i++ {
		if i == handlePos {
			sb.WriteString(scrollbarHandleStyle.Render("┃"))
		} else {
			sb.WriteString(scrollbarTrackStyle.Render("│"))
		}
		if i < h-1 {
			sb.WriteString("\n")
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, l.viewport.View(), sb.String())
}

func (l *TaskList) Height() int {
	return l.viewport.Height
}

func (l *TaskList) YOffset() int {
	return l.viewport.YOffset
}
