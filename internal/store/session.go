package store

import (
	"reflect"
	"sync"
)

// Session owns a current State for shells that are not state machines
// themselves. Every method applies one operation atomically and returns a
// snapshot of the resulting state.
type Session struct {
	store *Store

	mu    sync.Mutex
	state State

	onChange   func(State)
	onChangeMu sync.RWMutex

	// opMu serialises operations together with their hook calls, so the
	// hook sees snapshots in mutation order.
	opMu sync.Mutex
}

func NewSession(st *Store, initial State) *Session {
	return &Session{
		store: st,
		state: initial.clone(),
	}
}

// SetOnChange registers a hook called with a snapshot after every operation
// that changed the state. Calls happen one at a time, in the order the
// operations were applied. The hook must not call back into the session.
func (s *Session) SetOnChange(fn func(State)) {
	s.onChangeMu.Lock()
	defer s.onChangeMu.Unlock()
	s.onChange = fn
}

func (s *Session) triggerChange(snapshot State) {
	s.onChangeMu.RLock()
	fn := s.onChange
	s.onChangeMu.RUnlock()

	if fn != nil {
		fn(snapshot)
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Session) apply(op func(State) (State, error)) (State, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next, err := op(prev)
	if err == nil {
		s.state = next
	}
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err == nil && !reflect.DeepEqual(prev, next) {
		s.triggerChange(snapshot)
	}
	return snapshot, err
}

func (s *Session) update(op func(State) State) State {
	snapshot, _ := s.apply(func(st State) (State, error) {
		return op(st), nil
	})
	return snapshot
}

func (s *Session) AddTask() (State, error) {
	return s.apply(s.store.AddTask)
}

func (s *Session) DeleteTask(id string) State {
	return s.update(func(st State) State { return s.store.DeleteTask(st, id) })
}

func (s *Session) CycleStatus(id string) State {
	return s.update(func(st State) State { return s.store.CycleStatus(st, id) })
}

func (s *Session) OpenEdit(id string) State {
	return s.update(func(st State) State { return s.store.OpenEdit(st, id) })
}

func (s *Session) SaveEdit() (State, error) {
	return s.apply(s.store.SaveEdit)
}

func (s *Session) CancelEdit() State {
	return s.update(s.store.CancelEdit)
}

func (s *Session) SetNewTitle(title string) State {
	return s.update(func(st State) State { return s.store.SetNewTitle(st, title) })
}

func (s *Session) SetNewDescription(description string) State {
	return s.update(func(st State) State { return s.store.SetNewDescription(st, description) })
}

func (s *Session) SetEditTitle(title string) State {
	return s.update(func(st State) State { return s.store.SetEditTitle(st, title) })
}

func (s *Session) SetEditDescription(description string) State {
	return s.update(func(st State) State { return s.store.SetEditDescription(st, description) })
}

func (s *Session) ToggleTheme() State {
	return s.update(s.store.ToggleTheme)
}
