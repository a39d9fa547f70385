package priority

import (
	"net/http"
	"strconv"

	"github.com/mentora-app/mentora-backend/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	ranked, err := h.service.RankAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to rank tasks")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, ranked)
}

func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	ranked, err := h.service.DailyPriorities(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to compute daily priorities")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, ranked)
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	next, err := h.service.SuggestNext(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to suggest next task")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if next == nil {
		http.Error(w, "no eligible tasks", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, next)
}
