package reminder

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type createReminderDTO struct {
	TaskID       uuid.UUID `json:"task_id"`
	ReminderTime time.Time `json:"reminder_time"`
	Message      string    `json:"message"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	reminders, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list reminders")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, reminders)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto createReminderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.TaskID == uuid.Nil || dto.ReminderTime.IsZero() {
		http.Error(w, "task_id and reminder_time are required", http.StatusBadRequest)
		return
	}

	reminder, err := h.service.Create(r.Context(), dto.TaskID, dto.ReminderTime, dto.Message)
	if err != nil {
		log.WithError(err).Error("Failed to create reminder")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, reminder)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete reminder")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
