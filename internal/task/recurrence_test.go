package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNextOccurrence(t *testing.T) {
	base := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		rt    RecurrenceType
		value int
		want  time.Time
	}{
		{"daily", RecurrenceDaily, 1, base.AddDate(0, 0, 1)},
		{"weekly", RecurrenceWeekly, 1, base.AddDate(0, 0, 7)},
		{"biweekly", RecurrenceWeekly, 2, base.AddDate(0, 0, 14)},
		{"monthly approximates thirty days", RecurrenceMonthly, 1, base.AddDate(0, 0, 30)},
		{"yearly approximates a year", RecurrenceYearly, 1, base.AddDate(0, 0, 365)},
		{"custom steps in days", RecurrenceCustom, 10, base.AddDate(0, 0, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextOccurrence(base, tc.rt, tc.value); !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

type recurringRepo struct {
	Repository
	recurring []Task
	created   []Task
}

func (r *recurringRepo) FindRecurringCompleted() ([]Task, error) {
	return r.recurring, nil
}

func (r *recurringRepo) Create(t *Task) error {
	r.created = append(r.created, *t)
	return nil
}

func TestPromoteRecurring(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	daily := RecurrenceDaily
	one := 1

	recurringTask := func(completedDaysAgo int) Task {
		completion := now.AddDate(0, 0, -completedDaysAgo)
		deadline := completion.Add(9 * time.Hour)
		return Task{
			ID:              uuid.New(),
			Title:           "review flashcards",
			GoalID:          uuid.New(),
			Completed:       true,
			CompletionDate:  &completion,
			Deadline:        &deadline,
			RecurrenceType:  &daily,
			RecurrenceValue: &one,
		}
	}

	t.Run("due occurrence spawns a new instance", func(t *testing.T) {
		original := recurringTask(1)
		repo := &recurringRepo{recurring: []Task{original}}
		svc := &service{repo: repo}

		created, err := svc.PromoteRecurring(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created != 1 || len(repo.created) != 1 {
			t.Fatalf("expected 1 new task, got %d", created)
		}

		fresh := repo.created[0]
		if fresh.Completed {
			t.Error("new instance must start incomplete")
		}
		if fresh.ParentTaskID == nil || *fresh.ParentTaskID != original.ID {
			t.Error("new instance must point at the original task")
		}
		if fresh.Title != original.Title {
			t.Errorf("expected title %q, got %q", original.Title, fresh.Title)
		}
		wantDeadline := original.Deadline.AddDate(0, 0, 1)
		if fresh.Deadline == nil || !fresh.Deadline.Equal(wantDeadline) {
			t.Errorf("expected deadline %v, got %v", wantDeadline, fresh.Deadline)
		}
	})

	t.Run("future occurrence stays put", func(t *testing.T) {
		original := recurringTask(0) // completed today, next due tomorrow
		repo := &recurringRepo{recurring: []Task{original}}
		svc := &service{repo: repo}

		created, err := svc.PromoteRecurring(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created != 0 || len(repo.created) != 0 {
			t.Fatalf("expected no new tasks, got %d", created)
		}
	})

	t.Run("occurrence landing today promotes", func(t *testing.T) {
		// Completed yesterday evening; the daily step lands later today.
		completion := now.AddDate(0, 0, -1).Add(14 * time.Hour)
		original := recurringTask(1)
		original.CompletionDate = &completion

		repo := &recurringRepo{recurring: []Task{original}}
		svc := &service{repo: repo}

		created, err := svc.PromoteRecurring(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created != 1 {
			t.Fatalf("expected promotion for an occurrence due today, got %d", created)
		}
	})
}
