package worker

import (
	"context"
	"sync"
	"time"

	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/progress"
	"github.com/mentora-app/mentora-backend/internal/reminder"
	"github.com/mentora-app/mentora-backend/internal/task"
)

// Worker runs the periodic sweeps: reminder triggering every interval,
// recurring task promotion once a day, and the end-of-day progress log.
type Worker struct {
	settings  *config.Settings
	reminders reminder.Service
	tasks     task.Service
	progress  progress.Service

	wg sync.WaitGroup
}

func New(settings *config.Settings, reminders reminder.Service, tasks task.Service, progressSvc progress.Service) *Worker {
	return &Worker{
		settings:  settings,
		reminders: reminders,
		tasks:     tasks,
		progress:  progressSvc,
	}
}

// Start launches the sweep loops. They stop when ctx is cancelled; Wait
// blocks until they have drained.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(3)
	go w.loop(ctx, w.settings.ReminderInterval, w.sweepReminders)
	go w.daily(ctx, w.settings.RecurrenceHour, 0, w.promoteRecurring)
	go w.daily(ctx, w.settings.DailyLogHour, w.settings.DailyLogMinute, w.logDailySummary)
}

// Wait blocks until every loop has exited.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, interval time.Duration, run func(context.Context)) {
	defer w.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run(ctx)
		}
	}
}

// daily fires run once a day at the given wall-clock time.
func (w *Worker) daily(ctx context.Context, hour, minute int, run func(context.Context)) {
	defer w.wg.Done()

	for {
		timer := time.NewTimer(untilNext(time.Now(), hour, minute))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			run(ctx)
		}
	}
}

func untilNext(now time.Time, hour, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func (w *Worker) sweepReminders(ctx context.Context) {
	log := config.WithContext(ctx)

	triggered, err := w.reminders.Sweep(ctx, time.Now(), w.settings.ReminderLookback)
	if err != nil {
		log.WithError(err).Error("Reminder sweep failed")
		return
	}
	if triggered > 0 {
		log.WithField("count", triggered).Info("Reminders triggered")
	}
}

func (w *Worker) promoteRecurring(ctx context.Context) {
	log := config.WithContext(ctx)

	promoted, err := w.tasks.PromoteRecurring(ctx, time.Now())
	if err != nil {
		log.WithError(err).Error("Recurring task promotion failed")
		return
	}
	if promoted > 0 {
		log.WithField("count", promoted).Info("Recurring tasks promoted")
	}
}

func (w *Worker) logDailySummary(ctx context.Context) {
	w.progress.LogDailySummary(ctx)
}
