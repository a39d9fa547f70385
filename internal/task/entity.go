package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/reminder"
)

// Task is a unit of work under a goal. Completed and CompletionDate move
// together: a completed task always has a completion timestamp and an
// incomplete one never does.
type Task struct {
	ID              uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string              `gorm:"type:varchar(128);not null" json:"title"`
	Description     string              `gorm:"type:text" json:"description,omitempty"`
	GoalID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"goal_id"`
	Goal            goal.Goal           `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"-"`
	Deadline        *time.Time          `json:"deadline,omitempty"`
	Priority        Priority            `gorm:"default:2" json:"priority"`
	Completed       bool                `gorm:"default:false" json:"completed"`
	CompletionDate  *time.Time          `json:"completion_date,omitempty"`
	RecurrenceType  *RecurrenceType     `gorm:"type:varchar(20)" json:"recurrence_type,omitempty"`
	RecurrenceValue *int                `json:"recurrence_value,omitempty"`
	ParentTaskID    *uuid.UUID          `gorm:"type:uuid" json:"parent_task_id,omitempty"`
	Reminders       []reminder.Reminder `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsOverdue reports whether the task has a deadline in the past and is still
// open. Derived, never stored.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil || t.Completed {
		return false
	}
	return now.After(*t.Deadline)
}
