package progress

import (
	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
)

type Container struct {
	Service Service
	Handler *Handler
}

func NewContainer(
	tasks task.Repository,
	goals goal.Repository,
	blueprints blueprint.Repository,
	categories category.Repository,
) *Container {
	service := NewService(tasks, goals, blueprints, categories)
	return &Container{
		Service: service,
		Handler: NewHandler(service),
	}
}
