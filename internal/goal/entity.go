package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/category"
)

// Goal is a medium-term objective inside a category. Its progress is derived
// from the completion state of its tasks, never stored.
type Goal struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string            `gorm:"type:varchar(128);not null" json:"title"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	CategoryID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"category_id"`
	Category    category.Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Completed   bool              `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}
