package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/container"
	"github.com/mentora-app/mentora-backend/internal/router"
	"github.com/mentora-app/mentora-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	settings := config.Load()
	config.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, settings)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start")
	}

	// Best effort: pick up the blueprint document when one is present.
	if _, err := os.Stat(settings.BlueprintPath); err == nil {
		if ok := c.Blueprint.Importer.ImportFromFile(ctx, settings.BlueprintPath); !ok {
			logrus.Warn("Blueprint import at startup failed")
		}
	}

	w := worker.New(settings, c.Reminder.Service, c.Task.Service, c.Progress.Service)
	w.Start(ctx)

	srv := &http.Server{
		Addr: ":" + settings.Port,
		Handler: router.New(router.RouterConfig{
			CategoryHandler:  c.Category.Handler,
			GoalHandler:      c.Goal.Handler,
			TaskHandler:      c.Task.Handler,
			ReminderHandler:  c.Reminder.Handler,
			BlueprintHandler: c.Blueprint.Handler,
			PriorityHandler:  c.Priority.Handler,
			ScheduleHandler:  c.Schedule.Handler,
			ProgressHandler:  c.Progress.Handler,
			BadgeHandler:     c.Badge.Handler,
		}),
	}

	go func() {
		logrus.WithField("port", settings.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Forced shutdown")
	}

	w.Wait()
	logrus.Info("Stopped")
}
