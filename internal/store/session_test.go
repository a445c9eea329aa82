package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldi/todo/pkg/models"
)

func TestSessionFlow(t *testing.T) {
	sess := NewSession(newTestStore(), NewState(SampleTasks()...))

	var changes int
	sess.SetOnChange(func(State) { changes++ })

	sess.SetNewTitle("Buy milk")
	snap, err := sess.AddTask()
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, "Buy milk", snap.Tasks[0].Title)
	assert.Equal(t, 2, changes)

	snap = sess.CycleStatus("id-1")
	assert.Equal(t, models.TaskStatusPastDue, snap.Tasks[0].Status)

	snap = sess.OpenEdit("id-1")
	assert.Equal(t, Editing("id-1"), snap.Mode)
	sess.SetEditTitle("Buy oat milk")
	sess.SetEditDescription("2 litres")
	snap, err = sess.SaveEdit()
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", snap.Tasks[0].Title)
	assert.Equal(t, "2 litres", snap.Tasks[0].Description)

	snap = sess.DeleteTask("id-1")
	assert.Len(t, snap.Tasks, 2)

	snap = sess.ToggleTheme()
	assert.True(t, snap.DarkMode)
	assert.Equal(t, 9, changes)
}

func TestSessionHookSkipsNoOps(t *testing.T) {
	sess := NewSession(newTestStore(), NewState(SampleTasks()...))

	var changes int
	sess.SetOnChange(func(State) { changes++ })

	sess.DeleteTask("missing")
	sess.CycleStatus("missing")
	sess.OpenEdit("missing")
	sess.CancelEdit()
	_, err := sess.SaveEdit()
	require.NoError(t, err)
	_, err = sess.AddTask()
	require.Error(t, err)

	assert.Equal(t, 0, changes)
}

func TestSessionValidationKeepsState(t *testing.T) {
	sess := NewSession(newTestStore(), NewState(SampleTasks()...))
	sess.OpenEdit("2")
	sess.SetEditTitle("")

	snap, err := sess.SaveEdit()
	assert.True(t, errors.Is(err, ErrTitleRequired))
	assert.True(t, snap.Mode.IsEditing())
	assert.Equal(t, SampleTasks(), snap.Tasks)
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	sess := NewSession(newTestStore(), NewState(SampleTasks()...))

	snap := sess.Snapshot()
	snap.Tasks[0].Title = "mutated"

	assert.Equal(t, "Linkedin", sess.Snapshot().Tasks[0].Title)
}

func TestSessionConcurrentAdds(t *testing.T) {
	sess := NewSession(New(WithClock(fixedClock())), NewState())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess.update(func(s State) State {
				s = sess.store.SetNewTitle(s, fmt.Sprintf("task %d", i))
				next, err := sess.store.AddTask(s)
				if err != nil {
					return s
				}
				return next
			})
		}(i)
	}
	wg.Wait()

	snap := sess.Snapshot()
	assert.Len(t, snap.Tasks, 20)
	seen := map[string]bool{}
	for _, task := range snap.Tasks {
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestSessionHookOrderMatchesMutations(t *testing.T) {
	const n = 50
	tasks := make([]models.Task, n)
	for i := range tasks {
		tasks[i] = models.Task{ID: fmt.Sprintf("t%d", i), Title: "task", Status: models.TaskStatusInProgress}
	}
	sess := NewSession(newTestStore(), NewState(tasks...))

	var counts []int
	sess.SetOnChange(func(s State) { counts = append(counts, len(s.Tasks)) })

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess.DeleteTask(fmt.Sprintf("t%d", i))
		}(i)
	}
	wg.Wait()

	require.Len(t, counts, n)
	for i, c := range counts {
		assert.Equal(t, n-1-i, c, "hook call %d", i)
	}
}
