package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("goal not found")

type Repository interface {
	Create(goal *Goal) error
	FindAll() ([]Goal, error)
	FindByID(id uuid.UUID) (*Goal, error)
	FindByCategory(categoryID uuid.UUID) ([]Goal, error)
	CountActive() (int64, error)
	CountCompletedBetween(start, end time.Time) (int64, error)
	Update(goal *Goal) error
	Delete(id uuid.UUID) error

	// TaskCounts reports total and completed task counts for a goal. It reads
	// the tasks table directly so the goal package stays below the task
	// package in the import graph.
	TaskCounts(goalID uuid.UUID) (total, completed int64, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(goal *Goal) error {
	return r.db.Create(goal).Error
}

func (r *repository) FindAll() ([]Goal, error) {
	var goals []Goal
	if err := r.db.Order("created_at").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Goal, error) {
	var goal Goal
	if err := r.db.First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) FindByCategory(categoryID uuid.UUID) ([]Goal, error) {
	var goals []Goal
	if err := r.db.Where("category_id = ?", categoryID).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&Goal{}).Where("completed = ?", false).Count(&count).Error
	return count, err
}

func (r *repository) CountCompletedBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&Goal{}).
		Where("completed = ? AND updated_at BETWEEN ? AND ?", true, start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(goal *Goal) error {
	return r.db.Save(goal).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Goal{}, "id = ?", id).Error
}

func (r *repository) TaskCounts(goalID uuid.UUID) (total, completed int64, err error) {
	if err = r.db.Table("tasks").Where("goal_id = ?", goalID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.Table("tasks").Where("goal_id = ? AND completed = ?", goalID, true).Count(&completed).Error
	if err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
