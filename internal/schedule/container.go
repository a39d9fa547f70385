package schedule

import (
	"gorm.io/gorm"

	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
)

type Container struct {
	Generator  Generator
	Reconciler Reconciler
	Handler    *Handler
}

func NewContainer(
	db *gorm.DB,
	blueprints blueprint.Repository,
	tasks task.Repository,
	goals goal.Repository,
	categories category.Repository,
) *Container {
	generator := NewGenerator(db)
	reconciler := NewReconciler(blueprints, tasks, goals, categories, generator)

	return &Container{
		Generator:  generator,
		Reconciler: reconciler,
		Handler:    NewHandler(generator, reconciler),
	}
}
