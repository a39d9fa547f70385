package container

import (
	"context"

	"github.com/sirupsen/logrus"

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

type Container struct {
	Settings *config.Settings

	Category  *category.Container
	Goal      *goal.Container
	Task      *task.Container
	Reminder  *reminder.Container
	Blueprint *blueprint.Container
	Priority  *priority.Container
	Schedule  *schedule.Container
	Progress  *progress.Container
	Badge     *badge.Container
}

// New connects to the database, migrates the schema and wires every domain
// container in dependency order.
func New(ctx context.Context, settings *config.Settings) (*Container, error) {
	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		return nil, err
	}
	if err := migrate(); err != nil {
		return nil, err
	}

	categoryContainer := category.NewContainer(config.DB)
	goalContainer := goal.NewContainer(config.DB, categoryContainer.Repo)
	reminderContainer := reminder.NewContainer(config.DB)
	taskContainer := task.NewContainer(config.DB, goalContainer.Repo, reminderContainer.Service)
	blueprintContainer := blueprint.NewContainer(config.DB, categoryContainer.Repo, goalContainer.Repo, settings.BlueprintPath)
	priorityContainer := priority.NewContainer(taskContainer.Repo, goalContainer.Repo, categoryContainer.Repo)
	scheduleContainer := schedule.NewContainer(config.DB, blueprintContainer.Repo, taskContainer.Repo, goalContainer.Repo, categoryContainer.Repo)
	progressContainer := progress.NewContainer(taskContainer.Repo, goalContainer.Repo, blueprintContainer.Repo, categoryContainer.Repo)
	badgeContainer := badge.NewContainer(config.DB, taskContainer.Repo, goalContainer.Repo, progressContainer.Service)

	if err := categoryContainer.Service.SeedDefaults(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to seed default categories")
	}

	return &Container{
		Settings:  settings,
		Category:  categoryContainer,
		Goal:      goalContainer,
		Task:      taskContainer,
		Reminder:  reminderContainer,
		Blueprint: blueprintContainer,
		Priority:  priorityContainer,
		Schedule:  scheduleContainer,
		Progress:  progressContainer,
		Badge:     badgeContainer,
	}, nil
}

func migrate() error {
	return config.DB.AutoMigrate(
		&category.Category{},
		&goal.Goal{},
		&task.Task{},
		&reminder.Reminder{},
		&blueprint.Blueprint{},
		&blueprint.TimeSlot{},
		&badge.EarnedBadge{},
	)
}
