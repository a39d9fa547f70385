package badge

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EarnedBadge records a badge that has been awarded. Snapshot keeps the
// stats that satisfied the condition at award time.
type EarnedBadge struct {
	ID       uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BadgeID  string         `gorm:"type:varchar(32);not null;uniqueIndex" json:"badge_id"`
	Name     string         `gorm:"type:varchar(64);not null" json:"name"`
	Icon     string         `gorm:"type:varchar(16)" json:"icon"`
	Snapshot datatypes.JSON `json:"snapshot,omitempty"`
	EarnedAt time.Time      `gorm:"autoCreateTime" json:"earned_at"`
}
