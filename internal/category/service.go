package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/config"
)

var ErrNameTaken = errors.New("category name already in use")

// Defaults are seeded on first boot so a fresh install starts with the
// standard life areas.
var Defaults = []Category{
	{Name: "Study", Description: "Academic and learning goals", Color: "#0d6efd"},
	{Name: "Freelancing", Description: "Freelance work and projects", Color: "#6610f2"},
	{Name: "AI Tools", Description: "AI learning and development goals", Color: "#6f42c1"},
	{Name: "Certifications", Description: "Professional certifications and courses", Color: "#d63384"},
	{Name: "Career Planning", Description: "Career development and planning", Color: "#198754"},
}

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, dto CreateCategoryDTO) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateCategoryDTO) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SeedDefaults(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.FindAll()
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetByName(ctx context.Context, name string) (*Category, error) {
	return s.repo.FindByName(name)
}

func (s *service) Create(ctx context.Context, dto CreateCategoryDTO) (*Category, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByName(dto.Name)
	if err == nil {
		log.WithField("name", dto.Name).Warn("Category already exists, returning existing")
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	category := Category{
		Name:        dto.Name,
		Description: dto.Description,
		Color:       dto.Color,
	}
	if category.Color == "" {
		category.Color = DefaultColor
	}

	if err := s.repo.Create(&category); err != nil {
		log.WithError(err).Error("Failed to create category")
		return nil, err
	}

	log.WithField("category_id", category.ID).Info("Category created")
	return &category, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateCategoryDTO) (*Category, error) {
	log := config.WithContext(ctx)

	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != category.Name {
		if other, err := s.repo.FindByName(*dto.Name); err == nil && other.ID != id {
			return nil, ErrNameTaken
		}
		category.Name = *dto.Name
	}
	if dto.Description != nil {
		category.Description = *dto.Description
	}
	if dto.Color != nil {
		category.Color = *dto.Color
	}

	if err := s.repo.Update(category); err != nil {
		log.WithError(err).Error("Failed to update category")
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Goals, tasks and time slots under it go with
// it via the database cascade.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete category")
		return err
	}

	log.WithField("category_id", id).Info("Category deleted")
	return nil
}

func (s *service) SeedDefaults(ctx context.Context) error {
	for _, def := range Defaults {
		if _, err := s.repo.FindByName(def.Name); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		def := def
		if err := s.repo.Create(&def); err != nil {
			return err
		}
	}
	return nil
}
