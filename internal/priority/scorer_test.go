package priority

import (
	"testing"
	"time"

	"github.com/mentora-app/mentora-backend/internal/task"
)

var scoreNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func deadlineIn(days int) *time.Time {
	d := scoreNow.AddDate(0, 0, days)
	return &d
}

func TestScore(t *testing.T) {
	t.Run("completed task scores flat maximum", func(t *testing.T) {
		in := Input{Task: task.Task{Priority: task.PriorityHigh, Completed: true, Deadline: deadlineIn(-3)}}
		if got := Score(CategoryWeights, in, scoreNow); got != CompletedScore {
			t.Fatalf("expected %d, got %d", CompletedScore, got)
		}
	})

	t.Run("base follows priority", func(t *testing.T) {
		for _, tc := range []struct {
			priority task.Priority
			want     int
		}{
			{task.PriorityHigh, 100},
			{task.PriorityMedium, 200},
			{task.PriorityLow, 300},
		} {
			in := Input{Task: task.Task{Priority: tc.priority}}
			if got := Score(CategoryWeights, in, scoreNow); got != tc.want {
				t.Errorf("priority %d: expected %d, got %d", tc.priority, tc.want, got)
			}
		}
	})

	t.Run("deadline term bands", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			days int
			term int
		}{
			{"overdue", -1, 200},
			{"due today", 0, 150},
			{"within two days", 2, 100},
			{"within a week", 7, 50},
			{"ten days out", 10, 25},
			{"far future floors at zero", 70, 0},
		} {
			in := Input{Task: task.Task{Priority: task.PriorityMedium, Deadline: deadlineIn(tc.days)}}
			got := Score(CategoryWeights, in, scoreNow)
			if want := 200 - tc.term; got != want {
				t.Errorf("%s: expected %d, got %d", tc.name, want, got)
			}
		}
	})

	t.Run("overdue beats ten days out by at least 150", func(t *testing.T) {
		overdue := Input{Task: task.Task{Priority: task.PriorityMedium, Deadline: deadlineIn(-2)}}
		distant := Input{Task: task.Task{Priority: task.PriorityMedium, Deadline: deadlineIn(10)}}
		gap := Score(CategoryWeights, distant, scoreNow) - Score(CategoryWeights, overdue, scoreNow)
		if gap < 150 {
			t.Fatalf("expected gap >= 150, got %d", gap)
		}
	})

	t.Run("category weight and progress bonus subtract", func(t *testing.T) {
		in := Input{
			Task:         task.Task{Priority: task.PriorityMedium},
			CategoryName: "Certifications",
			GoalProgress: 80,
		}
		// 200 - 40 (category) - 30 (progress >= 75)
		if got := Score(CategoryWeights, in, scoreNow); got != 130 {
			t.Fatalf("expected 130, got %d", got)
		}

		in.GoalProgress = 60
		// 200 - 40 - 15
		if got := Score(CategoryWeights, in, scoreNow); got != 145 {
			t.Fatalf("expected 145, got %d", got)
		}
	})

	t.Run("unknown category weighs nothing", func(t *testing.T) {
		in := Input{Task: task.Task{Priority: task.PriorityMedium}, CategoryName: "Gardening"}
		if got := Score(CategoryWeights, in, scoreNow); got != 200 {
			t.Fatalf("expected 200, got %d", got)
		}
	})

	t.Run("dependents subtract twenty each", func(t *testing.T) {
		in := Input{Task: task.Task{Priority: task.PriorityMedium}, Dependents: 3}
		if got := Score(CategoryWeights, in, scoreNow); got != 140 {
			t.Fatalf("expected 140, got %d", got)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		in := Input{
			Task:         task.Task{Priority: task.PriorityHigh, Deadline: deadlineIn(1)},
			CategoryName: "Study",
			GoalProgress: 55,
			Dependents:   1,
		}
		first := Score(CategoryWeights, in, scoreNow)
		for i := 0; i < 5; i++ {
			if got := Score(CategoryWeights, in, scoreNow); got != first {
				t.Fatalf("score drifted: %d then %d", first, got)
			}
		}
	})
}

func TestRank(t *testing.T) {
	t.Run("ascending by score, completed last", func(t *testing.T) {
		inputs := []Input{
			{Task: task.Task{Title: "done", Completed: true}},
			{Task: task.Task{Title: "relaxed", Priority: task.PriorityLow}},
			{Task: task.Task{Title: "urgent", Priority: task.PriorityHigh, Deadline: deadlineIn(0)}},
		}
		ranked := Rank(CategoryWeights, inputs, scoreNow)
		if ranked[0].Task.Title != "urgent" {
			t.Errorf("expected urgent first, got %s", ranked[0].Task.Title)
		}
		if ranked[len(ranked)-1].Task.Title != "done" {
			t.Errorf("expected completed last, got %s", ranked[len(ranked)-1].Task.Title)
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		inputs := []Input{
			{Task: task.Task{Title: "first", Priority: task.PriorityMedium}},
			{Task: task.Task{Title: "second", Priority: task.PriorityMedium}},
			{Task: task.Task{Title: "third", Priority: task.PriorityMedium}},
		}
		ranked := Rank(CategoryWeights, inputs, scoreNow)
		for i, want := range []string{"first", "second", "third"} {
			if ranked[i].Task.Title != want {
				t.Errorf("position %d: expected %s, got %s", i, want, ranked[i].Task.Title)
			}
		}
	})
}
