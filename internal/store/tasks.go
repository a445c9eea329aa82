package store

import (
	"strings"

	"github.com/ldi/todo/pkg/models"
)

// AddTask commits the new-task draft as an In Progress task at the front of
// the list and clears the draft. An empty or all-whitespace title fails with
// a ValidationError and leaves the state, including the draft, unchanged.
func (st *Store) AddTask(s State) (State, error) {
	if strings.TrimSpace(s.NewDraft.Title) == "" {
		st.logger.Warn("task rejected", "op", OpAddTask, "err", ErrTitleRequired)
		return s, &ValidationError{Op: OpAddTask, Field: "title"}
	}

	task := models.Task{
		ID:          st.ids.NewID(),
		Title:       s.NewDraft.Title,
		Description: s.NewDraft.Description,
		Status:      models.TaskStatusInProgress,
		DueDate:     FormatDueDate(st.now()),
	}

	next := s
	next.Tasks = make([]models.Task, 0, len(s.Tasks)+1)
	next.Tasks = append(next.Tasks, task)
	next.Tasks = append(next.Tasks, s.Tasks...)
	next.NewDraft = Draft{}

	st.logger.Debug("task added", "id", task.ID, "count", len(next.Tasks))
	return next, nil
}

// DeleteTask removes the task with the given id. Unknown ids are ignored.
// Deleting the task under edit also closes the edit.
func (st *Store) DeleteTask(s State, id string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}

	next := s
	next.Tasks = make([]models.Task, 0, len(s.Tasks)-1)
	next.Tasks = append(next.Tasks, s.Tasks[:i]...)
	next.Tasks = append(next.Tasks, s.Tasks[i+1:]...)

	if target, ok := s.Mode.Target(); ok && target == id {
		next.Mode = Idle()
		next.EditDraft = Draft{}
	}

	st.logger.Debug("task deleted", "id", id, "count", len(next.Tasks))
	return next
}

// CycleStatus advances the status of the task with the given id. Unknown
// ids are ignored.
func (st *Store) CycleStatus(s State, id string) State {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}

	next := s.clone()
	from := next.Tasks[i].Status
	next.Tasks[i].Status = from.Next()

	st.logger.Debug("status cycled", "id", id, "from", from, "to", next.Tasks[i].Status)
	return next
}

// SetNewTitle updates the new-task draft title.
func (st *Store) SetNewTitle(s State, title string) State {
	s.NewDraft.Title = title
	return s
}

func (st *Store) SetNewDescription(s State, description string) State {
	s.NewDraft.Description = description
	return s
}

// SetDarkMode sets the theme flag. It has no effect on anything but
// presentation.
func (st *Store) SetDarkMode(s State, dark bool) State {
	s.DarkMode = dark
	return s
}

func (st *Store) ToggleTheme(s State) State {
	return st.SetDarkMode(s, !s.DarkMode)
}
