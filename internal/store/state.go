package store

import (
	"encoding/json"

	"github.com/ldi/todo/pkg/models"
)

// Draft is an uncommitted title/description pair.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Mode is either Idle or Editing a single task. The target id is only
// reachable while editing.
type Mode struct {
	editing bool
	target  string
}

func Idle() Mode {
	return Mode{}
}

func Editing(taskID string) Mode {
	return Mode{editing: true, target: taskID}
}

func (m Mode) IsEditing() bool {
	return m.editing
}

// Target returns the id of the task being edited.
func (m Mode) Target() (string, bool) {
	return m.target, m.editing
}

func (m Mode) String() string {
	if !m.editing {
		return "idle"
	}
	return "editing(" + m.target + ")"
}

func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.editing {
		return json.Marshal(map[string]string{"kind": "idle"})
	}
	return json.Marshal(map[string]string{"kind": "editing", "task_id": m.target})
}

// State is everything a shell needs to render: the task list (newest
// first), both drafts, the edit mode and the theme flag. States are values;
// operations never modify the state they are given.
type State struct {
	Tasks     []models.Task `json:"tasks"`
	NewDraft  Draft         `json:"new_draft"`
	EditDraft Draft         `json:"edit_draft"`
	Mode      Mode          `json:"mode"`
	DarkMode  bool          `json:"dark_mode"`
}

// NewState returns an idle state holding tasks in the given order.
func NewState(tasks ...models.Task) State {
	s := State{Tasks: make([]models.Task, len(tasks))}
	copy(s.Tasks, tasks)
	return s
}

// Task returns the task with the given id.
func (s State) Task(id string) (models.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Tasks[i], true
	}
	return models.Task{}, false
}

func (s State) indexOf(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// clone copies the task slice so the result can be changed without
// affecting s.
func (s State) clone() State {
	next := s
	next.Tasks = make([]models.Task, len(s.Tasks))
	copy(next.Tasks, s.Tasks)
	return next
}
