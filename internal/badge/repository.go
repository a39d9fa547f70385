package badge

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(earned *EarnedBadge) error
	FindAll() ([]EarnedBadge, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(earned *EarnedBadge) error {
	return r.db.Create(earned).Error
}

func (r *repository) FindAll() ([]EarnedBadge, error) {
	var earned []EarnedBadge
	if err := r.db.Order("earned_at").Find(&earned).Error; err != nil {
		return nil, err
	}
	return earned, nil
}
