package blueprint

import (
	"github.com/google/uuid"
)

type CreateBlueprintDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DayOfWeek   *string `json:"day_of_week"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateBlueprintDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DayOfWeek   *string `json:"day_of_week"`
	IsActive    *bool   `json:"is_active"`
}

type CreateTimeSlotDTO struct {
	BlueprintID uuid.UUID  `json:"blueprint_id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	GoalID      *uuid.UUID `json:"goal_id"`
	TaskID      *uuid.UUID `json:"task_id"`
}

type UpdateTimeSlotDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *string    `json:"start_time"`
	EndTime     *string    `json:"end_time"`
	CategoryID  *uuid.UUID `json:"category_id"`
	GoalID      *uuid.UUID `json:"goal_id"`
}
