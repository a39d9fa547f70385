package progress

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mentora-app/mentora-backend/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	metrics, err := h.service.DailyMetrics(r.Context(), date)
	if err != nil {
		log.WithError(err).Error("Failed to compute daily metrics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, metrics)
}

func (h *Handler) Weekly(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	end := time.Now()
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid end date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end = parsed
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 31 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
		days = n
	}

	metrics, err := h.service.WeeklyMetrics(r.Context(), end, days)
	if err != nil {
		log.WithError(err).Error("Failed to compute weekly metrics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, metrics)
}

func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	streak, err := h.service.CurrentStreak(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute streak")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]int{"streak": streak})
}

func (h *Handler) Nudge(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	message, err := h.service.NudgeMessage(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build nudge")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	report, err := h.service.WeeklyReport(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to render weekly report")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}

func (h *Handler) Overall(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	overall, err := h.service.Overall(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute overall progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, overall)
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 31 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
		days = n
	}

	items, err := h.service.RecentActivity(r.Context(), days)
	if err != nil {
		log.WithError(err).Error("Failed to load recent activity")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, items)
}
