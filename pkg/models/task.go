package models

type TaskStatus string

const (
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusPastDue    TaskStatus = "Past Due"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Statuses lists every status in cycle order.
var Statuses = []TaskStatus{
	TaskStatusInProgress,
	TaskStatusPastDue,
	TaskStatusCompleted,
}

// Next returns the status that follows s in the cycle
// In Progress -> Past Due -> Completed -> In Progress.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusInProgress:
		return TaskStatusPastDue
	case TaskStatusPastDue:
		return TaskStatusCompleted
	default:
		return TaskStatusInProgress
	}
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusInProgress, TaskStatusPastDue, TaskStatusCompleted:
		return true
	}
	return false
}

func (s TaskStatus) String() string {
	return string(s)
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"due_date"`
}
