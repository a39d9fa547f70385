package badge

import (
	"gorm.io/gorm"

	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/progress"
	"github.com/mentora-app/mentora-backend/internal/task"
)

type Container struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewContainer(db *gorm.DB, tasks task.Repository, goals goal.Repository, progressSvc progress.Service) *Container {
	repo := NewRepository(db)
	service := NewService(repo, tasks, goals, progressSvc)

	return &Container{
		Repo:    repo,
		Service: service,
		Handler: NewHandler(service),
	}
}
