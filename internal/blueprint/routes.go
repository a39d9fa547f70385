package blueprint

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/import", h.Import)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func SlotRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListSlots)
	r.Post("/", h.CreateSlot)
	r.Put("/{id}", h.UpdateSlot)
	r.Delete("/{id}", h.DeleteSlot)

	return r
}
