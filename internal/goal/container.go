package goal

import (
	"github.com/mentora-app/mentora-backend/internal/category"
	"gorm.io/gorm"
)

type Container struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewContainer(db *gorm.DB, categoryRepo category.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, categoryRepo)
	handler := NewHandler(service)

	return &Container{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
