package task

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskDTO struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	GoalID          uuid.UUID       `json:"goal_id"`
	Deadline        *time.Time      `json:"deadline"`
	Priority        *Priority       `json:"priority"`
	RecurrenceType  *RecurrenceType `json:"recurrence_type"`
	RecurrenceValue *int            `json:"recurrence_value"`
	ParentTaskID    *uuid.UUID      `json:"parent_task_id"`
}

type UpdateTaskDTO struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	GoalID          *uuid.UUID      `json:"goal_id"`
	Deadline        *time.Time      `json:"deadline"`
	Priority        *Priority       `json:"priority"`
	Completed       *bool           `json:"completed"`
	RecurrenceType  *RecurrenceType `json:"recurrence_type"`
	RecurrenceValue *int            `json:"recurrence_value"`
	ParentTaskID    *uuid.UUID      `json:"parent_task_id"`
}

// TaskResponse is a Task plus its derived overdue flag.
type TaskResponse struct {
	Task
	IsOverdue bool `json:"is_overdue"`
}

func NewTaskResponse(t *Task, now time.Time) TaskResponse {
	return TaskResponse{Task: *t, IsOverdue: t.IsOverdue(now)}
}
