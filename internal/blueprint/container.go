package blueprint

import (
	"gorm.io/gorm"

	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/goal"
)

type Container struct {
	Repo     Repository
	Service  Service
	Importer Importer
	Handler  *Handler
}

func NewContainer(db *gorm.DB, categoryRepo category.Repository, goalRepo goal.Repository, blueprintPath string) *Container {
	repo := NewRepository(db)
	service := NewService(repo, categoryRepo, goalRepo)
	importer := NewImporter(db)
	handler := NewHandler(service, importer, blueprintPath)

	return &Container{
		Repo:     repo,
		Service:  service,
		Importer: importer,
		Handler:  handler,
	}
}
