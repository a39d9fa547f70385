package blueprint

import (
	"time"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// Blueprint is a named container of time slots for one weekday, or the
// default plan when DayOfWeek is nil. At most one active blueprint exists per
// day-of-week value.
type Blueprint struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(128);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	DayOfWeek   *string    `gorm:"type:varchar(16);index" json:"day_of_week,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	TimeSlots   []TimeSlot `gorm:"foreignKey:BlueprintID;constraint:OnDelete:CASCADE" json:"time_slots,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TimeSlot is a fixed time-of-day interval inside a blueprint, tagged with a
// category and optionally bound to a goal and a task. TaskID is the direct
// link written at allocation time; slots from older data may only carry the
// (goal, title) pair, which the reconciler falls back to.
type TimeSlot struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BlueprintID uuid.UUID         `gorm:"type:uuid;not null;index" json:"blueprint_id"`
	Blueprint   Blueprint         `gorm:"foreignKey:BlueprintID;constraint:OnDelete:CASCADE" json:"-"`
	CategoryID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"category_id"`
	Category    category.Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string            `gorm:"type:varchar(128);not null" json:"title"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	StartTime   util.TimeOfDay    `gorm:"not null" json:"start_time"`
	EndTime     util.TimeOfDay    `gorm:"not null" json:"end_time"`
	GoalID      *uuid.UUID        `gorm:"type:uuid" json:"goal_id,omitempty"`
	Goal        *goal.Goal        `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"-"`
	TaskID      *uuid.UUID        `gorm:"type:uuid" json:"task_id,omitempty"`
	Task        *task.Task        `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

// Weekdays in schedule order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
