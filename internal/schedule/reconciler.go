package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

var ErrInvalidDay = errors.New("invalid day of week")

// snoozeHour is the time of day snoozed and missed tasks are pushed to.
const snoozeHour = 17

// DaySlot is one schedule entry with its references resolved for display.
type DaySlot struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	StartTime     util.TimeOfDay `json:"start_time"`
	EndTime       util.TimeOfDay `json:"end_time"`
	CategoryName  string         `json:"category_name"`
	CategoryColor string         `json:"category_color"`
	GoalTitle     string         `json:"goal_title,omitempty"`
	TaskID        *uuid.UUID     `json:"task_id,omitempty"`
	TaskCompleted bool           `json:"task_completed"`
}

// DailyScheduleResult is the reconciler's answer for one day. HasSchedule is
// false when no blueprint exists for the day, which is a normal state rather
// than an error.
type DailyScheduleResult struct {
	Day         string    `json:"day"`
	HasSchedule bool      `json:"has_schedule"`
	Blueprint   string    `json:"blueprint,omitempty"`
	Slots       []DaySlot `json:"slots"`
}

// Reconciler adjusts the generated schedule to what actually happened during
// the day. Snooze and missed handling both end in a full weekly regeneration,
// so each call costs a complete rebuild.
type Reconciler interface {
	DailySchedule(ctx context.Context, day string) (*DailyScheduleResult, error)

	// MarkSlotComplete completes the task behind a slot. False means the
	// slot does not exist; a slot with no resolvable task still reports
	// true and nothing changes.
	MarkSlotComplete(ctx context.Context, slotID uuid.UUID) (bool, error)

	// SnoozeTask pushes the slot's task to tomorrow 17:00 when it is due
	// today or earlier, removes the slot and regenerates the week.
	SnoozeTask(ctx context.Context, slotID uuid.UUID) (bool, error)

	// HandleMissedTask pushes an overdue task to tomorrow 17:00 and
	// regenerates. False when the task is missing or not overdue.
	HandleMissedTask(ctx context.Context, taskID uuid.UUID) (bool, error)
}

type reconciler struct {
	blueprints blueprint.Repository
	tasks      task.Repository
	goals      goal.Repository
	categories category.Repository
	generator  Generator
	now        func() time.Time
}

func NewReconciler(
	blueprints blueprint.Repository,
	tasks task.Repository,
	goals goal.Repository,
	categories category.Repository,
	generator Generator,
) Reconciler {
	return &reconciler{
		blueprints: blueprints,
		tasks:      tasks,
		goals:      goals,
		categories: categories,
		generator:  generator,
		now:        time.Now,
	}
}

func (r *reconciler) DailySchedule(ctx context.Context, day string) (*DailyScheduleResult, error) {
	log := config.WithContext(ctx)

	day, err := resolveDay(day, r.now())
	if err != nil {
		return nil, err
	}

	bp, err := r.blueprints.FindActiveByDay(day)
	if err != nil {
		if errors.Is(err, blueprint.ErrNotFound) {
			return &DailyScheduleResult{Day: day, HasSchedule: false, Slots: []DaySlot{}}, nil
		}
		log.WithError(err).Error("Failed to load blueprint")
		return nil, err
	}

	slots, err := r.blueprints.FindSlots(&bp.ID, nil)
	if err != nil {
		log.WithError(err).Error("Failed to load time slots")
		return nil, err
	}

	result := &DailyScheduleResult{
		Day:         day,
		HasSchedule: true,
		Blueprint:   bp.Name,
		Slots:       make([]DaySlot, 0, len(slots)),
	}
	for _, slot := range slots {
		entry := DaySlot{
			ID:        slot.ID,
			Title:     slot.Title,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			TaskID:    slot.TaskID,
		}
		if cat, err := r.categories.FindByID(slot.CategoryID); err == nil {
			entry.CategoryName = cat.Name
			entry.CategoryColor = cat.Color
		}
		if slot.GoalID != nil {
			if g, err := r.goals.FindByID(*slot.GoalID); err == nil {
				entry.GoalTitle = g.Title
			}
		}
		if t := r.slotTask(&slot); t != nil {
			entry.TaskCompleted = t.Completed
		}
		result.Slots = append(result.Slots, entry)
	}
	return result, nil
}

func (r *reconciler) MarkSlotComplete(ctx context.Context, slotID uuid.UUID) (bool, error) {
	log := config.WithContext(ctx)

	slot, err := r.blueprints.FindSlotByID(slotID)
	if err != nil {
		if errors.Is(err, blueprint.ErrSlotNotFound) {
			return false, nil
		}
		return false, err
	}

	t := r.slotTask(slot)
	if t == nil {
		// Slot exists but no task backs it. Nothing to update.
		return true, nil
	}

	now := r.now()
	t.Completed = true
	t.CompletionDate = &now
	if err := r.tasks.Update(t); err != nil {
		log.WithError(err).Error("Failed to complete task from slot")
		return false, err
	}
	log.WithField("task", t.Title).Info("Task completed from schedule")
	return true, nil
}

func (r *reconciler) SnoozeTask(ctx context.Context, slotID uuid.UUID) (bool, error) {
	log := config.WithContext(ctx)

	slot, err := r.blueprints.FindSlotByID(slotID)
	if err != nil {
		if errors.Is(err, blueprint.ErrSlotNotFound) {
			return false, nil
		}
		return false, err
	}

	now := r.now()
	if t := r.slotTask(slot); t != nil {
		if t.Deadline != nil && !t.Deadline.After(util.DayEnd(now)) {
			deadline := tomorrowAt(now, snoozeHour)
			t.Deadline = &deadline
			if err := r.tasks.Update(t); err != nil {
				log.WithError(err).Error("Failed to push snoozed deadline")
				return false, err
			}
		}
	}

	if err := r.blueprints.DeleteSlot(slot.ID); err != nil {
		log.WithError(err).Error("Failed to delete snoozed slot")
		return false, err
	}

	r.generator.GenerateWeekly(ctx)
	return true, nil
}

func (r *reconciler) HandleMissedTask(ctx context.Context, taskID uuid.UUID) (bool, error) {
	log := config.WithContext(ctx)

	t, err := r.tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	// A task that is not actually overdue keeps its deadline; the rebuild
	// still runs so the week reflects the current task set.
	now := r.now()
	if t.Deadline != nil && t.Deadline.Before(now) {
		deadline := tomorrowAt(now, snoozeHour)
		t.Deadline = &deadline
		if err := r.tasks.Update(t); err != nil {
			log.WithError(err).Error("Failed to reschedule missed task")
			return false, err
		}
	}

	r.generator.GenerateWeekly(ctx)
	return true, nil
}

// slotTask resolves the task behind a slot: the direct link first, then the
// (goal, title) pair for slots written before the link existed.
func (r *reconciler) slotTask(slot *blueprint.TimeSlot) *task.Task {
	if slot.TaskID != nil {
		if t, err := r.tasks.FindByID(*slot.TaskID); err == nil {
			return t
		}
	}
	if slot.GoalID != nil {
		if t, err := r.tasks.FindByGoalAndTitle(*slot.GoalID, slot.Title); err == nil {
			return t
		}
	}
	return nil
}

// resolveDay normalizes a day name, defaulting to today.
func resolveDay(day string, now time.Time) (string, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return now.Weekday().String(), nil
	}
	day = strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
	for _, d := range blueprint.Weekdays {
		if d == day {
			return day, nil
		}
	}
	return "", ErrInvalidDay
}

func tomorrowAt(now time.Time, hour int) time.Time {
	d := util.DayStart(now).AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}
