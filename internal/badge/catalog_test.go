package badge

import "testing"

func TestEvaluate(t *testing.T) {
	t.Run("nothing earned on empty stats", func(t *testing.T) {
		if got := Evaluate(Stats{}, nil); len(got) != 0 {
			t.Fatalf("expected no badges, got %d", len(got))
		}
	})

	t.Run("streak thresholds stack", func(t *testing.T) {
		got := Evaluate(Stats{Streak: 5}, nil)
		ids := make(map[string]bool)
		for _, b := range got {
			ids[b.ID] = true
		}
		if !ids["streak_3"] || !ids["streak_5"] {
			t.Error("expected streak_3 and streak_5")
		}
		if ids["streak_7"] {
			t.Error("streak_7 should need seven days")
		}
	})

	t.Run("already earned badges stay earned", func(t *testing.T) {
		earned := map[string]bool{"streak_3": true}
		for _, b := range Evaluate(Stats{Streak: 4}, earned) {
			if b.ID == "streak_3" {
				t.Fatal("streak_3 awarded twice")
			}
		}
	})

	t.Run("completion milestones", func(t *testing.T) {
		got := Evaluate(Stats{TotalCompleted: 50}, nil)
		ids := make(map[string]bool)
		for _, b := range got {
			ids[b.ID] = true
		}
		if !ids["tasks_10"] || !ids["tasks_50"] {
			t.Error("expected tasks_10 and tasks_50")
		}
		if ids["tasks_100"] {
			t.Error("tasks_100 should need one hundred completions")
		}
	})

	t.Run("special badges follow their flags", func(t *testing.T) {
		stats := Stats{PerfectDay: true, EarlyBird: true, WeekendWarrior: true}
		ids := make(map[string]bool)
		for _, b := range Evaluate(stats, nil) {
			ids[b.ID] = true
		}
		for _, want := range []string{"perfect_day", "early_bird", "weekend_warrior"} {
			if !ids[want] {
				t.Errorf("expected %s to be earned", want)
			}
		}
		for _, not := range []string{"perfect_week", "night_owl", "category_master"} {
			if ids[not] {
				t.Errorf("did not expect %s", not)
			}
		}
	})

	t.Run("catalog ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, b := range Catalog {
			if seen[b.ID] {
				t.Fatalf("duplicate badge id %s", b.ID)
			}
			seen[b.ID] = true
		}
	})
}
