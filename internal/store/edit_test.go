package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldi/todo/pkg/models"
)

func TestOpenEdit(t *testing.T) {
	st := newTestStore()
	s := NewState(SampleTasks()...)

	next := st.OpenEdit(s, "2")
	id, ok := next.Mode.Target()
	require.True(t, ok)
	assert.Equal(t, "2", id)
	assert.Equal(t, Draft{Title: "Finding a job", Description: "Get a job as a full stack developer"}, next.EditDraft)
	assert.Equal(t, s.Tasks, next.Tasks)
	assert.False(t, s.Mode.IsEditing(), "input state untouched")
}

func TestOpenEditUnknownID(t *testing.T) {
	st := newTestStore()
	s := NewState(SampleTasks()...)

	next := st.OpenEdit(s, "missing")
	assert.Equal(t, s, next)
	assert.False(t, next.Mode.IsEditing())
}

func TestOpenEditThenCancel(t *testing.T) {
	st := newTestStore()
	s := NewState(SampleTasks()...)

	next := st.OpenEdit(s, "1")
	next = st.SetEditTitle(next, "something else")
	next = st.SetEditDescription(next, "other")
	next = st.CancelEdit(next)

	assert.Equal(t, s, next)
	_, ok := next.Mode.Target()
	assert.False(t, ok, "no id lingers after the edit closes")
}

func TestSaveEdit(t *testing.T) {
	st := newTestStore()
	s := st.CycleStatus(NewState(SampleTasks()...), "1")

	next := st.OpenEdit(s, "1")
	next = st.SetEditTitle(next, " Linkedin post ")
	next = st.SetEditDescription(next, "")

	saved, err := st.SaveEdit(next)
	require.NoError(t, err)

	want := s.Tasks[0]
	want.Title = " Linkedin post "
	want.Description = ""
	assert.Equal(t, want, saved.Tasks[0])
	assert.Equal(t, models.TaskStatusPastDue, saved.Tasks[0].Status)
	assert.Equal(t, s.Tasks[1], saved.Tasks[1])
	assert.Equal(t, Idle(), saved.Mode)
	assert.Equal(t, Draft{}, saved.EditDraft)
	assert.Equal(t, "Linkedin", s.Tasks[0].Title, "input state untouched")
}

func TestSaveEditRejectsBlankTitle(t *testing.T) {
	st := newTestStore()
	s := st.OpenEdit(NewState(SampleTasks()...), "1")
	s = st.SetEditTitle(s, "   ")
	s = st.SetEditDescription(s, "new description")

	next, err := st.SaveEdit(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTitleRequired))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, OpSaveEdit, verr.Op)

	assert.Equal(t, s, next)
	assert.True(t, next.Mode.IsEditing(), "edit stays open for correction")
	assert.Equal(t, SampleTasks(), next.Tasks)
}

func TestSaveEditWhileIdle(t *testing.T) {
	st := newTestStore()
	s := NewState(SampleTasks()...)

	next, err := st.SaveEdit(s)
	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestSaveEditTargetGone(t *testing.T) {
	st := newTestStore()
	s := st.OpenEdit(NewState(SampleTasks()...), "1")
	// Build a state whose target vanished without going through DeleteTask.
	s.Tasks = s.Tasks[1:]

	next, err := st.SaveEdit(s)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks, next.Tasks)
	assert.False(t, next.Mode.IsEditing())
}

func TestEditSettersIgnoredWhileIdle(t *testing.T) {
	st := newTestStore()
	s := NewState(SampleTasks()...)

	assert.Equal(t, s, st.SetEditTitle(s, "x"))
	assert.Equal(t, s, st.SetEditDescription(s, "y"))
	assert.Equal(t, s, st.CancelEdit(s))
}

func TestModeJSON(t *testing.T) {
	data, err := Idle().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"idle"}`, string(data))

	data, err = Editing("7").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"editing","task_id":"7"}`, string(data))

	assert.Equal(t, "editing(7)", Editing("7").String())
}
