package task

import (
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/reminder"
	"gorm.io/gorm"
)

type Container struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewContainer(db *gorm.DB, goalRepo goal.Repository, reminders reminder.Service) *Container {
	repo := NewRepository(db)
	service := NewService(repo, goalRepo, reminders)
	handler := NewHandler(service)

	return &Container{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
