package goal

import (
	"time"

	"github.com/google/uuid"
)

type CreateGoalDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  uuid.UUID  `json:"category_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type UpdateGoalDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Completed   *bool      `json:"completed"`
}

// GoalResponse is a Goal plus its derived progress percentage.
type GoalResponse struct {
	Goal
	Progress int `json:"progress"`
}
