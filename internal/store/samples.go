package store

import "github.com/ldi/todo/pkg/models"

// SampleTasks returns the demo tasks a fresh list starts with when samples
// are enabled.
func SampleTasks() []models.Task {
	return []models.Task{
		{
			ID:          "1",
			Title:       "Linkedin",
			Description: "Upload a post about the task management app",
			Status:      models.TaskStatusInProgress,
			DueDate:     "January 3rd, 2025",
		},
		{
			ID:          "2",
			Title:       "Finding a job",
			Description: "Get a job as a full stack developer",
			Status:      models.TaskStatusPastDue,
			DueDate:     "December 29th, 2024",
		},
	}
}
