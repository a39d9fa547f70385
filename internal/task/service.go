package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/reminder"
)

var (
	ErrGoalNotFound      = goal.ErrNotFound
	ErrSelfParent        = errors.New("task cannot be its own parent")
	ErrInvalidPriority   = errors.New("priority must be 1 (high), 2 (medium) or 3 (low)")
	ErrInvalidRecurrence = errors.New("invalid recurrence type")
)

type Service interface {
	List(ctx context.Context, completed *bool) ([]TaskResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*TaskResponse, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID, completed *bool) ([]TaskResponse, error)
	Create(ctx context.Context, dto CreateTaskDTO) (*TaskResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateTaskDTO) (*TaskResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) (*TaskResponse, error)
	MarkIncomplete(ctx context.Context, id uuid.UUID) (*TaskResponse, error)

	// PromoteRecurring creates fresh instances of completed recurring tasks
	// whose next occurrence has arrived. Run once a day.
	PromoteRecurring(ctx context.Context, now time.Time) (int, error)
}

type service struct {
	repo      Repository
	goalRepo  goal.Repository
	reminders reminder.Service
}

func NewService(repo Repository, goalRepo goal.Repository, reminders reminder.Service) Service {
	return &service{repo: repo, goalRepo: goalRepo, reminders: reminders}
}

func (s *service) List(ctx context.Context, completed *bool) ([]TaskResponse, error) {
	tasks, err := s.repo.FindAll(completed)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := NewTaskResponse(task, time.Now().UTC())
	return &resp, nil
}

func (s *service) ListByGoal(ctx context.Context, goalID uuid.UUID, completed *bool) ([]TaskResponse, error) {
	if _, err := s.goalRepo.FindByID(goalID); err != nil {
		return nil, err
	}
	tasks, err := s.repo.FindByGoal(goalID, completed)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

func (s *service) Create(ctx context.Context, dto CreateTaskDTO) (*TaskResponse, error) {
	log := config.WithContext(ctx)

	if _, err := s.goalRepo.FindByID(dto.GoalID); err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			log.WithField("goal_id", dto.GoalID).Warn("Goal not found for task creation")
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	task := Task{
		Title:           dto.Title,
		Description:     dto.Description,
		GoalID:          dto.GoalID,
		Deadline:        dto.Deadline,
		Priority:        PriorityMedium,
		RecurrenceValue: dto.RecurrenceValue,
		ParentTaskID:    dto.ParentTaskID,
	}
	if dto.Priority != nil {
		if !dto.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *dto.Priority
	}
	if dto.RecurrenceType != nil {
		if !dto.RecurrenceType.Valid() {
			return nil, ErrInvalidRecurrence
		}
		task.RecurrenceType = dto.RecurrenceType
	}

	if err := s.repo.Create(&task); err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	if task.Deadline != nil {
		if err := s.reminders.CreateDefaults(ctx, task.ID, task.Title, *task.Deadline); err != nil {
			log.WithError(err).Warn("Failed to create default reminders")
		}
	}

	log.WithField("task_id", task.ID).Info("Task created")
	resp := NewTaskResponse(&task, time.Now().UTC())
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateTaskDTO) (*TaskResponse, error) {
	log := config.WithContext(ctx)

	task, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		task.Title = *dto.Title
	}
	if dto.Description != nil {
		task.Description = *dto.Description
	}
	if dto.GoalID != nil {
		if _, err := s.goalRepo.FindByID(*dto.GoalID); err != nil {
			if errors.Is(err, goal.ErrNotFound) {
				return nil, ErrGoalNotFound
			}
			return nil, err
		}
		task.GoalID = *dto.GoalID
	}

	deadlineChanged := false
	if dto.Deadline != nil {
		if task.Deadline == nil || !dto.Deadline.Equal(*task.Deadline) {
			deadlineChanged = true
		}
		task.Deadline = dto.Deadline
	}

	if dto.Priority != nil {
		if !dto.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *dto.Priority
	}
	if dto.Completed != nil {
		applyCompletion(task, *dto.Completed, time.Now().UTC())
	}
	if dto.RecurrenceType != nil {
		if !dto.RecurrenceType.Valid() {
			return nil, ErrInvalidRecurrence
		}
		task.RecurrenceType = dto.RecurrenceType
	}
	if dto.RecurrenceValue != nil {
		task.RecurrenceValue = dto.RecurrenceValue
	}
	if dto.ParentTaskID != nil {
		if *dto.ParentTaskID == id {
			return nil, ErrSelfParent
		}
		task.ParentTaskID = dto.ParentTaskID
	}

	if err := s.repo.Update(task); err != nil {
		log.WithError(err).Error("Failed to update task")
		return nil, err
	}

	if deadlineChanged {
		if err := s.reminders.ReplaceForTask(ctx, task.ID, task.Title, task.Deadline); err != nil {
			log.WithError(err).Warn("Failed to refresh reminders after deadline change")
		}
	}

	resp := NewTaskResponse(task, time.Now().UTC())
	return &resp, nil
}

// Delete removes the task and its reminders.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete task")
		return err
	}

	log.WithField("task_id", id).Info("Task deleted")
	return nil
}

func (s *service) MarkCompleted(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	completed := true
	return s.Update(ctx, id, UpdateTaskDTO{Completed: &completed})
}

func (s *service) MarkIncomplete(ctx context.Context, id uuid.UUID) (*TaskResponse, error) {
	completed := false
	return s.Update(ctx, id, UpdateTaskDTO{Completed: &completed})
}

// applyCompletion keeps Completed and CompletionDate in lockstep.
func applyCompletion(t *Task, completed bool, now time.Time) {
	if completed && !t.Completed {
		t.CompletionDate = &now
	} else if !completed && t.Completed {
		t.CompletionDate = nil
	}
	t.Completed = completed
}

func toResponses(tasks []Task) []TaskResponse {
	now := time.Now().UTC()
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, NewTaskResponse(&tasks[i], now))
	}
	return responses
}
