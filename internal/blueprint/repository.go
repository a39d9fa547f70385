package blueprint

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("blueprint not found")
	ErrSlotNotFound = errors.New("time slot not found")
)

type Repository interface {
	Create(blueprint *Blueprint) error
	FindAll(activeOnly bool) ([]Blueprint, error)
	FindByID(id uuid.UUID) (*Blueprint, error)
	FindActiveByDay(day string) (*Blueprint, error)
	FindActiveDefault() (*Blueprint, error)
	Update(blueprint *Blueprint) error
	Delete(id uuid.UUID) error

	CreateSlot(slot *TimeSlot) error
	FindSlotByID(id uuid.UUID) (*TimeSlot, error)
	FindSlots(blueprintID, categoryID *uuid.UUID) ([]TimeSlot, error)
	UpdateSlot(slot *TimeSlot) error
	DeleteSlot(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(blueprint *Blueprint) error {
	return r.db.Create(blueprint).Error
}

func (r *repository) FindAll(activeOnly bool) ([]Blueprint, error) {
	query := r.db.Order("created_at")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var blueprints []Blueprint
	if err := query.Find(&blueprints).Error; err != nil {
		return nil, err
	}
	return blueprints, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Blueprint, error) {
	var blueprint Blueprint
	if err := r.db.First(&blueprint, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blueprint, nil
}

func (r *repository) FindActiveByDay(day string) (*Blueprint, error) {
	var blueprint Blueprint
	err := r.db.First(&blueprint, "day_of_week = ? AND is_active = ?", day, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blueprint, nil
}

func (r *repository) FindActiveDefault() (*Blueprint, error) {
	var blueprint Blueprint
	err := r.db.First(&blueprint, "day_of_week IS NULL AND is_active = ?", true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blueprint, nil
}

func (r *repository) Update(blueprint *Blueprint) error {
	return r.db.Save(blueprint).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Blueprint{}, "id = ?", id).Error
}

func (r *repository) CreateSlot(slot *TimeSlot) error {
	return r.db.Create(slot).Error
}

func (r *repository) FindSlotByID(id uuid.UUID) (*TimeSlot, error) {
	var slot TimeSlot
	if err := r.db.First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *repository) FindSlots(blueprintID, categoryID *uuid.UUID) ([]TimeSlot, error) {
	query := r.db.Order("start_time")
	if blueprintID != nil {
		query = query.Where("blueprint_id = ?", *blueprintID)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	var slots []TimeSlot
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repository) UpdateSlot(slot *TimeSlot) error {
	return r.db.Save(slot).Error
}

func (r *repository) DeleteSlot(id uuid.UUID) error {
	return r.db.Delete(&TimeSlot{}, "id = ?", id).Error
}
