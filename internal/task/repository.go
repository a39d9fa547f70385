package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("task not found")

type Repository interface {
	Create(task *Task) error
	FindByID(id uuid.UUID) (*Task, error)
	FindAll(completed *bool) ([]Task, error)
	FindByGoal(goalID uuid.UUID, completed *bool) ([]Task, error)
	FindByGoalAndTitle(goalID uuid.UUID, title string) (*Task, error)
	FindIncomplete() ([]Task, error)
	FindDueBeforeOrUndated(t time.Time) ([]Task, error)
	FindHighPriorityNotDueBefore(t time.Time) ([]Task, error)
	FindRecurringCompleted() ([]Task, error)
	FindCompletedBetween(start, end time.Time) ([]Task, error)
	CountDueBetween(start, end time.Time) (int64, error)
	CountCompletedDueBetween(start, end time.Time) (int64, error)
	CountCompletionsBetween(start, end time.Time) (int64, error)
	CountOverdue(before time.Time) (int64, error)
	CountIncompleteDueBetween(start, end time.Time) (int64, error)
	CountIncomplete() (int64, error)
	CountCompleted() (int64, error)
	CountDependents(taskID uuid.UUID) (int64, error)
	Update(task *Task) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(task *Task) error {
	return r.db.Create(task).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Task, error) {
	var task Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) FindAll(completed *bool) ([]Task, error) {
	query := r.db.Order("created_at")
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}
	var tasks []Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindByGoal(goalID uuid.UUID, completed *bool) ([]Task, error) {
	query := r.db.Where("goal_id = ?", goalID).Order("created_at")
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}
	var tasks []Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindByGoalAndTitle(goalID uuid.UUID, title string) (*Task, error) {
	var task Task
	err := r.db.First(&task, "goal_id = ? AND title = ?", goalID, title).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) FindIncomplete() ([]Task, error) {
	var tasks []Task
	if err := r.db.Where("completed = ?", false).Order("created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindDueBeforeOrUndated(t time.Time) ([]Task, error) {
	var tasks []Task
	err := r.db.
		Where("completed = ? AND (deadline IS NULL OR deadline < ?)", false, t).
		Order("created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindHighPriorityNotDueBefore(t time.Time) ([]Task, error) {
	var tasks []Task
	err := r.db.
		Where("completed = ? AND priority = ? AND (deadline IS NULL OR deadline >= ?)",
			false, PriorityHigh, t).
		Order("created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindRecurringCompleted() ([]Task, error) {
	var tasks []Task
	err := r.db.
		Where("completed = ? AND recurrence_type IS NOT NULL AND recurrence_value IS NOT NULL", true).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindCompletedBetween(start, end time.Time) ([]Task, error) {
	var tasks []Task
	err := r.db.
		Where("completion_date IS NOT NULL AND completion_date BETWEEN ? AND ?", start, end).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) CountDueBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("deadline BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) CountCompletedDueBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("deadline BETWEEN ? AND ? AND completed = ?", start, end, true).
		Count(&count).Error
	return count, err
}

func (r *repository) CountCompletionsBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("completion_date BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) CountOverdue(before time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("deadline < ? AND completed = ?", before, false).
		Count(&count).Error
	return count, err
}

func (r *repository) CountIncompleteDueBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).
		Where("deadline BETWEEN ? AND ? AND completed = ?", start, end, false).
		Count(&count).Error
	return count, err
}

func (r *repository) CountIncomplete() (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).Where("completed = ?", false).Count(&count).Error
	return count, err
}

func (r *repository) CountCompleted() (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).Where("completed = ?", true).Count(&count).Error
	return count, err
}

func (r *repository) CountDependents(taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Task{}).Where("parent_task_id = ?", taskID).Count(&count).Error
	return count, err
}

func (r *repository) Update(task *Task) error {
	return r.db.Save(task).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Task{}, "id = ?", id).Error
}
