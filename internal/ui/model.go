package ui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ldi/todo/internal/store"
	"github.com/ldi/todo/internal/ui/components"
	"github.com/ldi/todo/internal/ui/theme"
)

type focus int

const (
	focusTitle focus = iota
	focusDescription
	focusList
)

const (
	editFieldTitle = iota
	editFieldDescription
)

// Model is the interactive shell of the task list. It owns the current
// store.State and replaces it with whatever the store returns.
type Model struct {
	store  *store.Store
	state  store.State
	logger *log.Logger

	titleInput textinput.Model
	descInput  textinput.Model
	editTitle  textinput.Model
	editDesc   textinput.Model
	editField  int

	focus  focus
	cursor int
	alert  string

	list *components.TaskList
	help help.Model
	keys keyMap

	width    int
	height   int
	ready    bool
	quitting bool
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.Width = 40
	return ti
}

func NewModel(st *store.Store, initial store.State, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		store:      st,
		state:      initial,
		logger:     logger,
		titleInput: newInput("Task Title"),
		descInput:  newInput("Task Description"),
		editTitle:  newInput("Title"),
		editDesc:   newInput("Description"),
		list:       components.NewTaskList(0, 0),
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
	m.titleInput.SetValue(initial.NewDraft.Title)
	m.descInput.SetValue(initial.NewDraft.Description)
	m.setFocus(focusTitle)
	if initial.Mode.IsEditing() {
		m.loadEditInputs()
	}
	m.applyTheme()
	m.refreshList()
	return m
}

// State returns the current snapshot.
func (m *Model) State() store.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.recalculateLayout()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		if key.Matches(msg, m.keys.ThemeAlways) {
			m.toggleTheme()
			return m, nil
		}
		if m.state.Mode.IsEditing() {
			return m.updateEdit(msg)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.addTask()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + 2) % 3)
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.setFocus(focusList)
		return m, nil
	}

	cmd := m.updateFocusedInput(msg)
	m.state = m.store.SetNewTitle(m.state, m.titleInput.Value())
	m.state = m.store.SetNewDescription(m.state, m.descInput.Value())
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Cycle):
		if id, ok := m.selectedID(); ok {
			m.state = m.store.CycleStatus(m.state, id)
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.state = m.store.DeleteTask(m.state, id)
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.selectedID(); ok {
			m.openEdit(id)
		}
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.NextField):
		m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(focusDescription)
	}
	m.refreshList()
	return m, nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.saveEdit()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.state = m.store.CancelEdit(m.state)
		m.closeEdit()
		return m, nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField),
		msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m.setEditField(1 - m.editField)
		return m, nil
	}

	var cmd tea.Cmd
	if m.editField == editFieldTitle {
		m.editTitle, cmd = m.editTitle.Update(msg)
		m.state = m.store.SetEditTitle(m.state, m.editTitle.Value())
	} else {
		m.editDesc, cmd = m.editDesc.Update(msg)
		m.state = m.store.SetEditDescription(m.state, m.editDesc.Value())
	}
	return m, cmd
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.state.Mode.IsEditing() && m.editField == editFieldTitle:
		m.editTitle, cmd = m.editTitle.Update(msg)
	case m.state.Mode.IsEditing():
		m.editDesc, cmd = m.editDesc.Update(msg)
	case m.focus == focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case m.focus == focusDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return cmd
}

func (m *Model) addTask() {
	next, err := m.store.AddTask(m.state)
	if err != nil {
		m.showError(err)
		return
	}
	m.state = next
	m.titleInput.SetValue(next.NewDraft.Title)
	m.descInput.SetValue(next.NewDraft.Description)
	m.cursor = 0
	m.setFocus(focusTitle)
	m.refreshList()
}

func (m *Model) openEdit(id string) {
	m.state = m.store.OpenEdit(m.state, id)
	if !m.state.Mode.IsEditing() {
		return
	}
	m.loadEditInputs()
}

func (m *Model) loadEditInputs() {
	m.editTitle.SetValue(m.state.EditDraft.Title)
	m.editDesc.SetValue(m.state.EditDraft.Description)
	m.editTitle.CursorEnd()
	m.editDesc.CursorEnd()
	m.titleInput.Blur()
	m.descInput.Blur()
	m.setEditField(editFieldTitle)
}

func (m *Model) saveEdit() {
	next, err := m.store.SaveEdit(m.state)
	if err != nil {
		m.showError(err)
		return
	}
	m.state = next
	m.closeEdit()
}

func (m *Model) closeEdit() {
	m.editTitle.Blur()
	m.editDesc.Blur()
	m.editTitle.SetValue("")
	m.editDesc.SetValue("")
	m.setFocus(focusList)
}

func (m *Model) setEditField(field int) {
	m.editField = field
	if field == editFieldTitle {
		m.editTitle.Focus()
		m.editDesc.Blur()
	} else {
		m.editDesc.Focus()
		m.editTitle.Blur()
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.titleInput.Blur()
	m.descInput.Blur()
	switch f {
	case focusTitle:
		m.titleInput.Focus()
	case focusDescription:
		m.descInput.Focus()
	}
	m.refreshList()
}

func (m *Model) toggleTheme() {
	m.state = m.store.ToggleTheme(m.state)
	m.logger.Debug("theme toggled", "dark", m.state.DarkMode)
	m.applyTheme()
	m.refreshList()
}

func (m *Model) showError(err error) {
	m.alert = alertMessage(err)
	m.logger.Info("validation failed", "err", err)
}

// alertMessage maps a store error to the text shown in the alert box.
func alertMessage(err error) string {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		switch verr.Op {
		case store.OpAddTask:
			return "Please enter a task title"
		case store.OpSaveEdit:
			return "Title cannot be empty"
		}
	}
	return err.Error()
}

func (m *Model) selectedID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Tasks) {
		return "", false
	}
	return m.state.Tasks[m.cursor].ID, true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Tasks) {
		m.cursor = len(m.state.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) palette() theme.Theme {
	return theme.For(m.state.DarkMode)
}

func (m *Model) refreshList() {
	if m.list == nil {
		return
	}
	m.list.SetTasks(m.state.Tasks, m.cursor, m.focus == focusList, m.palette())
}
