package store

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Store performs every state transition of the task list. It holds no state
// of its own, only the clock, id source and logger that AddTask depends on,
// so a single Store can serve any number of states.
type Store struct {
	now    func() time.Time
	ids    IDSource
	logger *log.Logger
}

type Option func(*Store)

// WithClock overrides the time source used for due dates.
func WithClock(now func() time.Time) Option {
	return func(st *Store) {
		st.now = now
	}
}

func WithIDSource(ids IDSource) Option {
	return func(st *Store) {
		st.ids = ids
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(st *Store) {
		st.logger = logger
	}
}

// New creates a Store using the local clock and UUIDv7 ids.
func New(opts ...Option) *Store {
	st := &Store{
		now: time.Now,
		ids: UUIDSource{},
	}
	for _, opt := range opts {
		opt(st)
	}
	if st.logger == nil {
		st.logger = log.New(io.Discard)
	}
	return st
}
