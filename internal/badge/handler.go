package badge

import (
	"net/http"

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

	badges, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list badges")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, badges)
}

func (h *Handler) Earned(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	earned, err := h.service.Earned(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list earned badges")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, earned)
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	awarded, err := h.service.CheckForNewBadges(r.Context())
	if err != nil {
		log.WithError(err).Error("Badge check failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if awarded == nil {
		awarded = []EarnedBadge{}
	}

	config.JSON(w, http.StatusOK, awarded)
}
