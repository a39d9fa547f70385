package category

import "gorm.io/gorm"

type Container struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewContainer(db *gorm.DB) *Container {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
