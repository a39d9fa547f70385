package blueprint

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mentora-app/mentora-backend/internal/config"
)

type Handler struct {
	service  Service
	importer Importer
	path     string
}

func NewHandler(service Service, importer Importer, blueprintPath string) *Handler {
	return &Handler{service: service, importer: importer, path: blueprintPath}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))
	blueprints, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list blueprints")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, blueprints)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	blueprint, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "blueprint not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get blueprint")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, blueprint)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateBlueprintDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	blueprint, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateDay) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create blueprint")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, blueprint)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateBlueprintDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	blueprint, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "blueprint not found", http.StatusNotFound)
		case errors.Is(err, ErrDuplicateDay):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update blueprint")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, blueprint)
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
			http.Error(w, "blueprint not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete blueprint")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import triggers a blueprint import from the configured document path.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	if ok := h.importer.ImportFromFile(r.Context(), h.path); !ok {
		http.Error(w, "blueprint import failed", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, map[string]bool{"imported": true})
}

func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var blueprintID, categoryID *uuid.UUID
	if raw := r.URL.Query().Get("blueprint_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid blueprint_id", http.StatusBadRequest)
			return
		}
		blueprintID = &id
	}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid category_id", http.StatusBadRequest)
			return
		}
		categoryID = &id
	}

	slots, err := h.service.ListSlots(r.Context(), blueprintID, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list time slots")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, slots)
}

func (h *Handler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTimeSlotDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "blueprint not found", http.StatusNotFound)
		case errors.Is(err, ErrCategoryNotFound):
			http.Error(w, "category not found", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidTimeRange), errors.Is(err, ErrInvalidTimeFormat):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to create time slot")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, slot)
}

func (h *Handler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateTimeSlotDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	slot, err := h.service.UpdateSlot(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			http.Error(w, "time slot not found", http.StatusNotFound)
		case errors.Is(err, ErrCategoryNotFound),
			errors.Is(err, ErrInvalidTimeRange),
			errors.Is(err, ErrInvalidTimeFormat):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update time slot")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, slot)
}

func (h *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), id); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			http.Error(w, "time slot not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete time slot")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
