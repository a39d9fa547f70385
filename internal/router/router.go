package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mentora-app/mentora-backend/internal/badge"
	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/priority"
	"github.com/mentora-app/mentora-backend/internal/progress"
	"github.com/mentora-app/mentora-backend/internal/reminder"
	"github.com/mentora-app/mentora-backend/internal/schedule"
	"github.com/mentora-app/mentora-backend/internal/task"
)

type RouterConfig struct {
	CategoryHandler  *category.Handler
	GoalHandler      *goal.Handler
	TaskHandler      *task.Handler
	ReminderHandler  *reminder.Handler
	BlueprintHandler *blueprint.Handler
	PriorityHandler  *priority.Handler
	ScheduleHandler  *schedule.Handler
	ProgressHandler  *progress.Handler
	BadgeHandler     *badge.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/categories", category.Routes(cfg.CategoryHandler))
	r.Mount("/goals", goal.Routes(cfg.GoalHandler))
	r.Mount("/tasks", task.Routes(cfg.TaskHandler))
	r.Mount("/reminders", reminder.Routes(cfg.ReminderHandler))
	r.Mount("/blueprints", blueprint.Routes(cfg.BlueprintHandler))
	r.Mount("/time-slots", blueprint.SlotRoutes(cfg.BlueprintHandler))
	r.Mount("/priorities", priority.Routes(cfg.PriorityHandler))
	r.Mount("/schedule", schedule.Routes(cfg.ScheduleHandler))
	r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
	r.Mount("/badges", badge.Routes(cfg.BadgeHandler))

	return r
}
