package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups goals by life area (study, freelancing, and so on).
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(256)" json:"description,omitempty"`
	Color       string    `gorm:"type:varchar(7);default:'#6c757d'" json:"color"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// DefaultColor is used when no color fits a category name.
const DefaultColor = "#6c757d"
