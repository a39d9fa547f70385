package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
)

var ErrCategoryNotFound = category.ErrNotFound

type Service interface {
	List(ctx context.Context) ([]GoalResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*GoalResponse, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]GoalResponse, error)
	Create(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Progress returns the completed-task percentage for a goal, 0 when the
	// goal has no tasks.
	Progress(goalID uuid.UUID) (int, error)
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
}

func NewService(repo Repository, categoryRepo category.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo}
}

func (s *service) Progress(goalID uuid.UUID) (int, error) {
	total, completed, err := s.repo.TaskCounts(goalID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return int(float64(completed) / float64(total) * 100), nil
}

func (s *service) toResponse(g *Goal) (*GoalResponse, error) {
	progress, err := s.Progress(g.ID)
	if err != nil {
		return nil, err
	}
	return &GoalResponse{Goal: *g, Progress: progress}, nil
}

func (s *service) toResponses(goals []Goal) ([]GoalResponse, error) {
	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		resp, err := s.toResponse(&goals[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *service) List(ctx context.Context) ([]GoalResponse, error) {
	goals, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return s.toResponses(goals)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*GoalResponse, error) {
	goal, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(goal)
}

func (s *service) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]GoalResponse, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		return nil, err
	}
	goals, err := s.repo.FindByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(goals)
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	if _, err := s.categoryRepo.FindByID(dto.CategoryID); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			log.WithField("category_id", dto.CategoryID).Warn("Category not found for goal creation")
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	goal := Goal{
		Title:       dto.Title,
		Description: dto.Description,
		CategoryID:  dto.CategoryID,
		StartDate:   time.Now().UTC(),
		EndDate:     dto.EndDate,
	}
	if dto.StartDate != nil {
		goal.StartDate = *dto.StartDate
	}

	if err := s.repo.Create(&goal); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", goal.ID).Info("Goal created")
	return s.toResponse(&goal)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	goal, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		goal.Title = *dto.Title
	}
	if dto.Description != nil {
		goal.Description = *dto.Description
	}
	if dto.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*dto.CategoryID); err != nil {
			if errors.Is(err, category.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		goal.CategoryID = *dto.CategoryID
	}
	if dto.StartDate != nil {
		goal.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		goal.EndDate = dto.EndDate
	}
	if dto.Completed != nil {
		goal.Completed = *dto.Completed
	}

	if err := s.repo.Update(goal); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	return s.toResponse(goal)
}

// Delete removes the goal and cascades to its tasks.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		return err
	}

	log.WithField("goal_id", id).Info("Goal deleted")
	return nil
}
