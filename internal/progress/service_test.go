package progress

import (
	"context"
	"testing"
	"time"

	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/task"
)

// metricsNow is a Monday morning so day boundaries around it are unambiguous.
var metricsNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type metricsTasks struct {
	task.Repository
	tasks []task.Task
}

func within(t *time.Time, start, end time.Time) bool {
	return t != nil && !t.Before(start) && !t.After(end)
}

func (f *metricsTasks) CountDueBetween(start, end time.Time) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if within(t.Deadline, start, end) {
			n++
		}
	}
	return n, nil
}

func (f *metricsTasks) CountCompletedDueBetween(start, end time.Time) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if t.Completed && within(t.Deadline, start, end) {
			n++
		}
	}
	return n, nil
}

func (f *metricsTasks) CountCompletionsBetween(start, end time.Time) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if within(t.CompletionDate, start, end) {
			n++
		}
	}
	return n, nil
}

func (f *metricsTasks) CountOverdue(before time.Time) (int64, error) {
	var n int64
	for _, t := range f.tasks {
		if !t.Completed && t.Deadline != nil && t.Deadline.Before(before) {
			n++
		}
	}
	return n, nil
}

func (f *metricsTasks) FindCompletedBetween(start, end time.Time) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.Completed && within(t.CompletionDate, start, end) {
			out = append(out, t)
		}
	}
	return out, nil
}

type noBlueprints struct {
	blueprint.Repository
}

func (noBlueprints) FindActiveByDay(string) (*blueprint.Blueprint, error) {
	return nil, blueprint.ErrNotFound
}

func newMetricsService(tasks []task.Task) *service {
	return &service{
		tasks:      &metricsTasks{tasks: tasks},
		blueprints: noBlueprints{},
		now:        func() time.Time { return metricsNow },
	}
}

func at(day, hour int) *time.Time {
	t := time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestDailyMetricsOverdue(t *testing.T) {
	t.Run("tasks due later today are not overdue", func(t *testing.T) {
		s := newMetricsService([]task.Task{
			{Title: "essay", Deadline: at(10, 18)},
			{Title: "reading", Deadline: at(9, 18)},
		})

		m, err := s.DailyMetrics(context.Background(), metricsNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Overdue != 1 {
			t.Errorf("expected 1 overdue task, got %d", m.Overdue)
		}
		if m.Total != 1 {
			t.Errorf("expected 1 task due today, got %d", m.Total)
		}
	})

	t.Run("completed tasks never count as overdue", func(t *testing.T) {
		s := newMetricsService([]task.Task{
			{Title: "reading", Deadline: at(9, 18), Completed: true, CompletionDate: at(9, 20)},
		})

		m, err := s.DailyMetrics(context.Background(), metricsNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Overdue != 0 {
			t.Errorf("expected no overdue tasks, got %d", m.Overdue)
		}
	})
}

func TestWeeklyMetricsProductiveDays(t *testing.T) {
	tasks := []task.Task{
		{Title: "a", Deadline: at(8, 18), Completed: true, CompletionDate: at(8, 12)},
		{Title: "b", Deadline: at(8, 20)},
		{Title: "c", Deadline: at(10, 18), Completed: true, CompletionDate: at(10, 7)},
		{Title: "d", Deadline: at(10, 20), Completed: true, CompletionDate: at(10, 7)},
	}

	s := newMetricsService(tasks)
	weekly, err := s.WeeklyMetrics(context.Background(), metricsNow, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if weekly.MostProductiveDay != "2025-03-10" {
		t.Errorf("expected most productive day 2025-03-10, got %s", weekly.MostProductiveDay)
	}

	// March 9 has no tasks at all, so it must not claim the least
	// productive slot away from a day that actually had work.
	if weekly.LeastProductiveDay != "2025-03-08" {
		t.Errorf("expected least productive day 2025-03-08, got %s", weekly.LeastProductiveDay)
	}
}
