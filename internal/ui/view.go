package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/todo/internal/ui/components"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Padding(0, 1)

	addButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	helpBarStyle = lipgloss.NewStyle().
			Padding(0, 1)

	modalWidth = 50
)

// applyTheme restyles the inputs for the current palette.
func (m *Model) applyTheme() {
	t := m.palette()
	for _, in := range m.inputs() {
		in.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent)
		in.TextStyle = lipgloss.NewStyle().Foreground(t.Text)
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.Subtle)
		in.Cursor.Style = lipgloss.NewStyle().Foreground(t.Accent)
	}
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Muted)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Subtle)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.Subtle)
}

func (m *Model) inputs() []*textinput.Model {
	return []*textinput.Model{&m.titleInput, &m.descInput, &m.editTitle, &m.editDesc}
}

func (m *Model) recalculateLayout() {
	if !m.ready {
		return
	}

	inputWidth := m.width - 10
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.titleInput.Width = inputWidth
	m.descInput.Width = inputWidth
	m.editTitle.Width = min(inputWidth, modalWidth-10)
	m.editDesc.Width = min(inputWidth, modalWidth-10)
	m.help.Width = m.width

	available := m.height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderForm()) - lipgloss.Height(m.renderHelp())
	if available < 3 {
		available = 3
	}
	m.list.SetSize(m.width, available)
	m.refreshList()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading tasks..."
	}

	t := m.palette()

	if m.alert != "" {
		box := components.Alert{Title: "Error", Message: m.alert, Width: modalWidth, Theme: t}.View()
		return m.place(box)
	}

	if m.state.Mode.IsEditing() {
		box := components.EditModal{
			Title: "Edit Task",
			Fields: []string{
				inputStyle.Background(t.Input).Render(m.editTitle.View()),
				inputStyle.Background(t.Input).Render(m.editDesc.View()),
			},
			Width: modalWidth,
			Theme: t,
		}.View()
		return m.place(box)
	}

	content := strings.Join([]string{
		m.renderHeader(),
		m.renderForm(),
		m.list.View(),
		m.renderHelp(),
	}, "\n")

	return lipgloss.NewStyle().
		Background(t.Background).
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) place(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.palette().Background))
}

func (m *Model) renderHeader() string {
	t := m.palette()
	title := headerStyle.Foreground(t.Text).Render("TO DO LIST")
	icon := lipgloss.NewStyle().Foreground(t.Text).Render(t.Icon() + " (t)")

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(icon) - 1
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + icon + "\n"
}

func (m *Model) renderForm() string {
	t := m.palette()
	button := addButtonStyle.Background(t.Accent).Render("+ New Task (enter)")
	return formStyle.Render(strings.Join([]string{
		inputStyle.Background(t.Input).Render(m.titleInput.View()),
		inputStyle.Background(t.Input).Render(m.descInput.View()),
		button,
	}, "\n"))
}

func (m *Model) renderHelp() string {
	if m.focus == focusList {
		return helpBarStyle.Render(m.help.View(listHelp{m.keys}))
	}
	return helpBarStyle.Render(m.help.View(formHelp{m.keys}))
}

// Run starts the interactive shell and returns the final state once the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) (*Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(*Model); ok {
		return fm, err
	}
	return m, err
}
