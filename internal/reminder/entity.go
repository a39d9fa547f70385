package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a one-shot notification for a task. Triggered only ever flips
// false to true; the sweep may safely observe a reminder twice.
type Reminder struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	ReminderTime time.Time `gorm:"not null" json:"reminder_time"`
	Message      string    `gorm:"type:varchar(256)" json:"message,omitempty"`
	Triggered    bool      `gorm:"default:false" json:"triggered"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
