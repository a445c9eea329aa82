package store

import "strings"

// OpenEdit loads the edit draft from the task with the given id and enters
// edit mode for it. Unknown ids leave the state unchanged.
func (st *Store) OpenEdit(s State, id string) State {
	task, ok := s.Task(id)
	if !ok {
		return s
	}

	s.Mode = Editing(id)
	s.EditDraft = Draft{Title: task.Title, Description: task.Description}

	st.logger.Debug("edit opened", "id", id)
	return s
}

// SaveEdit writes the edit draft into the target task and leaves edit mode.
// Status and due date are kept. An empty trimmed title fails with a
// ValidationError and keeps edit mode and the draft as they are.
func (st *Store) SaveEdit(s State) (State, error) {
	id, ok := s.Mode.Target()
	if !ok {
		return s, nil
	}

	if strings.TrimSpace(s.EditDraft.Title) == "" {
		st.logger.Warn("edit rejected", "op", OpSaveEdit, "id", id, "err", ErrTitleRequired)
		return s, &ValidationError{Op: OpSaveEdit, Field: "title"}
	}

	next := s.clone()
	if i := next.indexOf(id); i >= 0 {
		next.Tasks[i].Title = s.EditDraft.Title
		next.Tasks[i].Description = s.EditDraft.Description
		st.logger.Debug("edit saved", "id", id)
	} else {
		st.logger.Debug("edit target gone", "id", id)
	}
	next.Mode = Idle()
	next.EditDraft = Draft{}
	return next, nil
}

// CancelEdit leaves edit mode and discards the edit draft.
func (st *Store) CancelEdit(s State) State {
	if !s.Mode.IsEditing() {
		return s
	}
	id, _ := s.Mode.Target()
	s.Mode = Idle()
	s.EditDraft = Draft{}

	st.logger.Debug("edit cancelled", "id", id)
	return s
}

// SetEditTitle updates the edit draft title. Ignored unless editing.
func (st *Store) SetEditTitle(s State, title string) State {
	if !s.Mode.IsEditing() {
		return s
	}
	s.EditDraft.Title = title
	return s
}

func (st *Store) SetEditDescription(s State, description string) State {
	if !s.Mode.IsEditing() {
		return s
	}
	s.EditDraft.Description = description
	return s
}
