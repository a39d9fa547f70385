package task

import (
	"context"
	"time"

	"github.com/mentora-app/mentora-backend/internal/config"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// NextOccurrence advances a base date by one recurrence interval. Monthly and
// yearly recurrences are approximated as 30 and 365 days.
func NextOccurrence(base time.Time, rt RecurrenceType, value int) time.Time {
	switch rt {
	case RecurrenceWeekly:
		return base.AddDate(0, 0, 7*value)
	case RecurrenceMonthly:
		return base.AddDate(0, 0, 30*value)
	case RecurrenceYearly:
		return base.AddDate(0, 0, 365*value)
	default:
		// daily and custom both step in days
		return base.AddDate(0, 0, value)
	}
}

func (s *service) PromoteRecurring(ctx context.Context, now time.Time) (int, error) {
	log := config.WithContext(ctx)

	recurring, err := s.repo.FindRecurringCompleted()
	if err != nil {
		log.WithError(err).Error("Failed to query recurring tasks")
		return 0, err
	}

	today := util.DayStart(now)
	created := 0

	for i := range recurring {
		t := &recurring[i]
		if t.CompletionDate == nil {
			continue
		}

		next := NextOccurrence(*t.CompletionDate, *t.RecurrenceType, *t.RecurrenceValue)
		if util.DayStart(next).After(today) {
			continue
		}

		parentID := t.ID
		fresh := Task{
			Title:           t.Title,
			Description:     t.Description,
			GoalID:          t.GoalID,
			Priority:        t.Priority,
			RecurrenceType:  t.RecurrenceType,
			RecurrenceValue: t.RecurrenceValue,
			ParentTaskID:    &parentID,
		}
		if t.Deadline != nil {
			deadline := NextOccurrence(*t.Deadline, *t.RecurrenceType, *t.RecurrenceValue)
			fresh.Deadline = &deadline
		}

		if err := s.repo.Create(&fresh); err != nil {
			log.WithError(err).Error("Failed to create recurring task instance")
			continue
		}
		created++
	}

	if created > 0 {
		log.Infof("Created %d new recurring tasks", created)
	}
	return created, nil
}
