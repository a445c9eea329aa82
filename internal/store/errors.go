package store

import "fmt"

const (
	OpAddTask  = "add_task"
	OpSaveEdit = "save_edit"
)

// ValidationError reports a draft that cannot be committed. It is the only
// error the store returns; the state is never modified when it occurs.
type ValidationError struct {
	Op    string
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s required", e.Field)
}

// Is matches any ValidationError on the same field, so callers can use
// errors.Is(err, ErrTitleRequired) regardless of the operation.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Field == e.Field
}

// ErrTitleRequired is returned when a draft title is empty after trimming.
var ErrTitleRequired = &ValidationError{Field: "title"}
