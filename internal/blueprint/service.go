package blueprint

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

var (
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrInvalidTimeFormat = errors.New("times must be in HH:MM format")
	ErrDuplicateDay      = errors.New("an active blueprint already exists for this day")
	ErrCategoryNotFound  = category.ErrNotFound
)

type Service interface {
	List(ctx context.Context, activeOnly bool) ([]Blueprint, error)
	Get(ctx context.Context, id uuid.UUID) (*Blueprint, error)

	// ForDay resolves the blueprint used on a given weekday: a day-specific
	// active blueprint first, else the active default.
	ForDay(ctx context.Context, day string) (*Blueprint, error)

	Create(ctx context.Context, dto CreateBlueprintDTO) (*Blueprint, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateBlueprintDTO) (*Blueprint, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListSlots(ctx context.Context, blueprintID, categoryID *uuid.UUID) ([]TimeSlot, error)
	CreateSlot(ctx context.Context, dto CreateTimeSlotDTO) (*TimeSlot, error)
	UpdateSlot(ctx context.Context, id uuid.UUID, dto UpdateTimeSlotDTO) (*TimeSlot, error)
	DeleteSlot(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
	goalRepo     goal.Repository
}

func NewService(repo Repository, categoryRepo category.Repository, goalRepo goal.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo, goalRepo: goalRepo}
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]Blueprint, error) {
	return s.repo.FindAll(activeOnly)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Blueprint, error) {
	return s.repo.FindByID(id)
}

func (s *service) ForDay(ctx context.Context, day string) (*Blueprint, error) {
	blueprint, err := s.repo.FindActiveByDay(day)
	if err == nil {
		return blueprint, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return s.repo.FindActiveDefault()
}

func (s *service) Create(ctx context.Context, dto CreateBlueprintDTO) (*Blueprint, error) {
	log := config.WithContext(ctx)

	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}

	// Keep one active blueprint per day-of-week value, the day-less default
	// included.
	if active {
		if err := s.checkDayFree(dto.DayOfWeek, uuid.Nil); err != nil {
			return nil, err
		}
	}

	blueprint := Blueprint{
		Name:        dto.Name,
		Description: dto.Description,
		DayOfWeek:   dto.DayOfWeek,
		IsActive:    active,
	}

	if err := s.repo.Create(&blueprint); err != nil {
		log.WithError(err).Error("Failed to create blueprint")
		return nil, err
	}

	log.WithField("blueprint_id", blueprint.ID).Info("Blueprint created")
	return &blueprint, nil
}

func (s *service) checkDayFree(day *string, exclude uuid.UUID) error {
	var existing *Blueprint
	var err error
	if day != nil {
		existing, err = s.repo.FindActiveByDay(*day)
	} else {
		existing, err = s.repo.FindActiveDefault()
	}
	if err == nil && existing.ID != exclude {
		return ErrDuplicateDay
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateBlueprintDTO) (*Blueprint, error) {
	log := config.WithContext(ctx)

	blueprint, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		blueprint.Name = *dto.Name
	}
	if dto.Description != nil {
		blueprint.Description = *dto.Description
	}
	if dto.DayOfWeek != nil {
		blueprint.DayOfWeek = dto.DayOfWeek
	}
	if dto.IsActive != nil {
		blueprint.IsActive = *dto.IsActive
	}

	if blueprint.IsActive && (dto.DayOfWeek != nil || dto.IsActive != nil) {
		if err := s.checkDayFree(blueprint.DayOfWeek, blueprint.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(blueprint); err != nil {
		log.WithError(err).Error("Failed to update blueprint")
		return nil, err
	}
	return blueprint, nil
}

// Delete removes the blueprint and cascades to its time slots.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete blueprint")
		return err
	}

	log.WithField("blueprint_id", id).Info("Blueprint deleted")
	return nil
}

func (s *service) ListSlots(ctx context.Context, blueprintID, categoryID *uuid.UUID) ([]TimeSlot, error) {
	return s.repo.FindSlots(blueprintID, categoryID)
}

func (s *service) CreateSlot(ctx context.Context, dto CreateTimeSlotDTO) (*TimeSlot, error) {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(dto.BlueprintID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(dto.CategoryID); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	start, end, err := parseSlotTimes(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}

	// A dangling goal reference is softened rather than rejected: the slot
	// still classifies by category.
	goalID := dto.GoalID
	if goalID != nil {
		if _, err := s.goalRepo.FindByID(*goalID); err != nil {
			if !errors.Is(err, goal.ErrNotFound) {
				return nil, err
			}
			log.WithField("goal_id", *goalID).Warn("Goal not found, creating time slot without goal")
			goalID = nil
		}
	}

	slot := TimeSlot{
		BlueprintID: dto.BlueprintID,
		CategoryID:  dto.CategoryID,
		Title:       dto.Title,
		Description: dto.Description,
		StartTime:   start,
		EndTime:     end,
		GoalID:      goalID,
		TaskID:      dto.TaskID,
	}

	if err := s.repo.CreateSlot(&slot); err != nil {
		log.WithError(err).Error("Failed to create time slot")
		return nil, err
	}

	log.WithField("slot_id", slot.ID).Info("Time slot created")
	return &slot, nil
}

func (s *service) UpdateSlot(ctx context.Context, id uuid.UUID, dto UpdateTimeSlotDTO) (*TimeSlot, error) {
	log := config.WithContext(ctx)

	slot, err := s.repo.FindSlotByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		slot.Title = *dto.Title
	}
	if dto.Description != nil {
		slot.Description = *dto.Description
	}
	if dto.StartTime != nil {
		start, err := util.ParseTimeOfDay(*dto.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		slot.StartTime = start
	}
	if dto.EndTime != nil {
		end, err := util.ParseTimeOfDay(*dto.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		slot.EndTime = end
	}
	if !slot.StartTime.Before(slot.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	if dto.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*dto.CategoryID); err != nil {
			if errors.Is(err, category.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		slot.CategoryID = *dto.CategoryID
	}
	if dto.GoalID != nil {
		slot.GoalID = dto.GoalID
	}

	if err := s.repo.UpdateSlot(slot); err != nil {
		log.WithError(err).Error("Failed to update time slot")
		return nil, err
	}
	return slot, nil
}

func (s *service) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindSlotByID(id); err != nil {
		return err
	}
	return s.repo.DeleteSlot(id)
}

func parseSlotTimes(startRaw, endRaw string) (util.TimeOfDay, util.TimeOfDay, error) {
	start, err := util.ParseTimeOfDay(startRaw)
	if err != nil {
		return util.TimeOfDay{}, util.TimeOfDay{}, ErrInvalidTimeFormat
	}
	end, err := util.ParseTimeOfDay(endRaw)
	if err != nil {
		return util.TimeOfDay{}, util.TimeOfDay{}, ErrInvalidTimeFormat
	}
	if !start.Before(end) {
		return util.TimeOfDay{}, util.TimeOfDay{}, ErrInvalidTimeRange
	}
	return start, end, nil
}
