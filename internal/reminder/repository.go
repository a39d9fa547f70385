package reminder

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("reminder not found")

type Repository interface {
	Create(reminder *Reminder) error
	FindByID(id uuid.UUID) (*Reminder, error)
	FindAll() ([]Reminder, error)
	FindByTask(taskID uuid.UUID) ([]Reminder, error)
	FindPending(since, until time.Time) ([]Reminder, error)
	Update(reminder *Reminder) error
	Delete(id uuid.UUID) error
	DeleteByTask(taskID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(reminder *Reminder) error {
	return r.db.Create(reminder).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Reminder, error) {
	var reminder Reminder
	if err := r.db.First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *repository) FindAll() ([]Reminder, error) {
	var reminders []Reminder
	if err := r.db.Order("reminder_time").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *repository) FindByTask(taskID uuid.UUID) ([]Reminder, error) {
	var reminders []Reminder
	if err := r.db.Where("task_id = ?", taskID).Order("reminder_time").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *repository) FindPending(since, until time.Time) ([]Reminder, error) {
	var reminders []Reminder
	err := r.db.
		Where("reminder_time <= ? AND reminder_time >= ? AND triggered = ?", until, since, false).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *repository) Update(reminder *Reminder) error {
	return r.db.Save(reminder).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Reminder{}, "id = ?", id).Error
}

func (r *repository) DeleteByTask(taskID uuid.UUID) error {
	return r.db.Delete(&Reminder{}, "task_id = ?", taskID).Error
}
