package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Get("/daily", h.Daily)
	r.Post("/slots/{id}/complete", h.CompleteSlot)
	r.Post("/slots/{id}/snooze", h.SnoozeSlot)
	r.Post("/tasks/{id}/missed", h.MissedTask)

	return r
}
