package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/config"
)

type Service interface {
	List(ctx context.Context) ([]Reminder, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]Reminder, error)
	Create(ctx context.Context, taskID uuid.UUID, at time.Time, message string) (*Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateDefaults sets up the standard pre-deadline reminders for a task:
	// one day before and one hour before, skipping any that are already in
	// the past.
	CreateDefaults(ctx context.Context, taskID uuid.UUID, title string, deadline time.Time) error

	// ReplaceForTask drops a task's reminders and recreates the defaults.
	// Called when a deadline moves.
	ReplaceForTask(ctx context.Context, taskID uuid.UUID, title string, deadline *time.Time) error

	// Sweep triggers every untriggered reminder whose time fell inside the
	// lookback window. The transition is monotonic, so running the sweep
	// concurrently with writers is harmless.
	Sweep(ctx context.Context, now time.Time, lookback time.Duration) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Reminder, error) {
	return s.repo.FindAll()
}

func (s *service) ListByTask(ctx context.Context, taskID uuid.UUID) ([]Reminder, error) {
	return s.repo.FindByTask(taskID)
}

func (s *service) Create(ctx context.Context, taskID uuid.UUID, at time.Time, message string) (*Reminder, error) {
	log := config.WithContext(ctx)

	reminder := Reminder{
		TaskID:       taskID,
		ReminderTime: at,
		Message:      message,
	}

	if err := s.repo.Create(&reminder); err != nil {
		log.WithError(err).Error("Failed to create reminder")
		return nil, err
	}

	log.WithField("task_id", taskID).WithField("reminder_time", at).Info("Reminder created")
	return &reminder, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) CreateDefaults(ctx context.Context, taskID uuid.UUID, title string, deadline time.Time) error {
	now := time.Now().UTC()

	oneDayBefore := deadline.Add(-24 * time.Hour)
	if oneDayBefore.After(now) {
		msg := fmt.Sprintf("Task '%s' is due tomorrow!", title)
		if _, err := s.Create(ctx, taskID, oneDayBefore, msg); err != nil {
			return err
		}
	}

	oneHourBefore := deadline.Add(-time.Hour)
	if oneHourBefore.After(now) {
		msg := fmt.Sprintf("Task '%s' is due in 1 hour!", title)
		if _, err := s.Create(ctx, taskID, oneHourBefore, msg); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) ReplaceForTask(ctx context.Context, taskID uuid.UUID, title string, deadline *time.Time) error {
	if err := s.repo.DeleteByTask(taskID); err != nil {
		return err
	}
	if deadline == nil {
		return nil
	}
	return s.CreateDefaults(ctx, taskID, title, *deadline)
}

func (s *service) Sweep(ctx context.Context, now time.Time, lookback time.Duration) (int, error) {
	log := config.WithContext(ctx)

	pending, err := s.repo.FindPending(now.Add(-lookback), now)
	if err != nil {
		log.WithError(err).Error("Failed to query pending reminders")
		return 0, err
	}

	triggered := 0
	for i := range pending {
		r := &pending[i]
		log.WithField("task_id", r.TaskID).Infof("REMINDER: %s", r.Message)

		r.Triggered = true
		if err := s.repo.Update(r); err != nil {
			log.WithError(err).Error("Failed to mark reminder triggered")
			continue
		}
		triggered++
	}

	if triggered > 0 {
		log.Infof("Triggered %d reminders", triggered)
	}
	return triggered, nil
}
