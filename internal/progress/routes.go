package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/daily", h.Daily)
	r.Get("/weekly", h.Weekly)
	r.Get("/streak", h.Streak)
	r.Get("/nudge", h.Nudge)
	r.Get("/report/weekly", h.WeeklyReport)
	r.Get("/overall", h.Overall)
	r.Get("/recent", h.Recent)

	return r
}
