package schedule

import (
	"testing"
	"time"

	"github.com/mentora-app/mentora-backend/internal/task"
)

var planNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) // a Monday

func candidate(title, categoryName string, priority task.Priority, deadline *time.Time) Candidate {
	return Candidate{
		Task:         task.Task{Title: title, Priority: priority, Deadline: deadline},
		CategoryName: categoryName,
	}
}

func dueIn(days int) *time.Time {
	d := planNow.AddDate(0, 0, days)
	return &d
}

func TestPlanDay(t *testing.T) {
	cfg := DefaultPlannerConfig()

	t.Run("day preference gates categories", func(t *testing.T) {
		candidates := []Candidate{
			candidate("resume", "Career Planning", task.PriorityHigh, nil),
			candidate("physics", "Class 11", task.PriorityHigh, nil),
		}

		monday := PlanDay(cfg, "Monday", candidates, planNow)
		for _, p := range monday {
			if p.CategoryName == "Career Planning" {
				t.Errorf("Career Planning should not appear on Monday")
			}
		}

		saturday := PlanDay(cfg, "Saturday", candidates, planNow)
		if len(saturday) != 1 || saturday[0].CategoryName != "Career Planning" {
			t.Errorf("expected only Career Planning on Saturday, got %d placements", len(saturday))
		}
	})

	t.Run("near deadline overrides day preference", func(t *testing.T) {
		candidates := []Candidate{
			candidate("resume", "Career Planning", task.PriorityLow, dueIn(1)),
		}
		placements := PlanDay(cfg, "Monday", candidates, planNow)
		if len(placements) != 1 {
			t.Fatalf("expected urgent task to qualify on Monday, got %d placements", len(placements))
		}
	})

	t.Run("unlisted category qualifies every day", func(t *testing.T) {
		candidates := []Candidate{
			candidate("stretch", "Health", task.PriorityMedium, nil),
		}
		for _, day := range []string{"Monday", "Thursday", "Sunday"} {
			if got := len(PlanDay(cfg, day, candidates, planNow)); got != 1 {
				t.Errorf("%s: expected 1 placement, got %d", day, got)
			}
		}
	})

	t.Run("category quota caps the selection", func(t *testing.T) {
		var candidates []Candidate
		for i := 0; i < 10; i++ {
			candidates = append(candidates, candidate("cert", "Certifications", task.PriorityHigh, nil))
		}
		// 8 slots/day at 20% rounds down to 1.
		placements := PlanDay(cfg, "Monday", candidates, planNow)
		if len(placements) != 1 {
			t.Fatalf("expected quota of 1 for Certifications, got %d", len(placements))
		}
	})

	t.Run("day never exceeds the slot cap", func(t *testing.T) {
		small := DefaultPlannerConfig()
		small.SlotsPerDay = 3
		small.Balance = map[string]int{"Stuff": 100}
		small.DayPreferences = map[string][]string{}
		small.BandPreferences = map[string][]Band{}

		var candidates []Candidate
		for i := 0; i < 10; i++ {
			candidates = append(candidates, candidate("x", "Stuff", task.PriorityMedium, nil))
		}
		if got := len(PlanDay(small, "Monday", candidates, planNow)); got != 3 {
			t.Fatalf("expected 3 placements, got %d", got)
		}
	})

	t.Run("high priority claims the budget first", func(t *testing.T) {
		candidates := []Candidate{
			candidate("low", "Certifications", task.PriorityLow, nil),
			candidate("high", "Certifications", task.PriorityHigh, nil),
		}
		placements := PlanDay(cfg, "Monday", candidates, planNow)
		if len(placements) != 1 || placements[0].Task.Title != "high" {
			t.Fatalf("expected the high priority task to win the quota")
		}
	})

	t.Run("preferred band fills first", func(t *testing.T) {
		candidates := []Candidate{
			candidate("physics", "Class 11", task.PriorityHigh, nil),
		}
		placements := PlanDay(cfg, "Monday", candidates, planNow)
		if len(placements) != 1 {
			t.Fatalf("expected 1 placement, got %d", len(placements))
		}
		if got := placements[0].Slot.Key(); got != "06:00-06:50" {
			t.Errorf("expected first morning slot, got %s", got)
		}
	})

	t.Run("slots never overlap", func(t *testing.T) {
		wide := DefaultPlannerConfig()
		wide.Balance = map[string]int{"Health": 100}

		var candidates []Candidate
		for i := 0; i < 8; i++ {
			candidates = append(candidates, candidate("stretch", "Health", task.PriorityMedium, nil))
		}
		placements := PlanDay(wide, "Monday", candidates, planNow)
		if len(placements) != 8 {
			t.Fatalf("expected 8 placements, got %d", len(placements))
		}
		seen := map[string]bool{}
		for _, p := range placements {
			key := p.Slot.Key()
			if seen[key] {
				t.Fatalf("slot %s allocated twice", key)
			}
			seen[key] = true
		}
	})

	t.Run("overflow drops silently", func(t *testing.T) {
		full := DefaultPlannerConfig()
		full.SlotsPerDay = 2
		full.Balance = map[string]int{"Stuff": 100}
		full.DayPreferences = map[string][]string{}
		full.BandPreferences = map[string][]Band{}
		full.Catalog = map[Band][]Slot{BandMorning: hourlySlots(6, 6)}

		candidates := []Candidate{
			candidate("a", "Stuff", task.PriorityHigh, nil),
			candidate("b", "Stuff", task.PriorityHigh, nil),
		}
		placements := PlanDay(full, "Monday", candidates, planNow)
		if len(placements) != 1 {
			t.Fatalf("expected overflow to drop, got %d placements", len(placements))
		}
	})
}
