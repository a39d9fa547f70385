package priority

import (
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
)

type Container struct {
	Service Service
	Handler *Handler
}

func NewContainer(tasks task.Repository, goals goal.Repository, categories category.Repository) *Container {
	service := NewService(tasks, goals, categories)
	return &Container{
		Service: service,
		Handler: NewHandler(service),
	}
}
