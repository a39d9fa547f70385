package schedule

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/config"
)

type Handler struct {
	generator  Generator
	reconciler Reconciler
}

func NewHandler(generator Generator, reconciler Reconciler) *Handler {
	return &Handler{generator: generator, reconciler: reconciler}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if ok := h.generator.GenerateWeekly(r.Context()); !ok {
		http.Error(w, "schedule generation failed", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	result, err := h.reconciler.DailySchedule(r.Context(), r.URL.Query().Get("day"))
	if err != nil {
		if errors.Is(err, ErrInvalidDay) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to build daily schedule")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) CompleteSlot(w http.ResponseWriter, r *http.Request) {
	h.slotAction(w, r, h.reconciler.MarkSlotComplete)
}

func (h *Handler) SnoozeSlot(w http.ResponseWriter, r *http.Request) {
	h.slotAction(w, r, h.reconciler.SnoozeTask)
}

func (h *Handler) slotAction(w http.ResponseWriter, r *http.Request, action func(context.Context, uuid.UUID) (bool, error)) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ok, err := action(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Slot action failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "time slot not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) MissedTask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	handled, err := h.reconciler.HandleMissedTask(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to handle missed task")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !handled {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
