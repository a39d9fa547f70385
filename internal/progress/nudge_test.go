package progress

import (
	"strings"
	"testing"
)

func TestNudge(t *testing.T) {
	cases := []struct {
		name     string
		stats    NudgeStats
		contains string
	}{
		{
			name:     "overdue wins when nothing done",
			stats:    NudgeStats{CompletedToday: 0, Overdue: 2, OpenTasks: 5},
			contains: "overdue",
		},
		{
			name:     "start small when open tasks but no completions",
			stats:    NudgeStats{CompletedToday: 0, OpenTasks: 5},
			contains: "Start small",
		},
		{
			name:     "plan when nothing exists",
			stats:    NudgeStats{CompletedToday: 0},
			contains: "plan",
		},
		{
			name:     "due soon warning",
			stats:    NudgeStats{CompletedToday: 1, DueSoon: 4},
			contains: "48 hours",
		},
		{
			name:     "burnout caution after two heavy days",
			stats:    NudgeStats{CompletedToday: 6, CompletedYesterday: 6},
			contains: "burnout",
		},
		{
			name:     "momentum praise",
			stats:    NudgeStats{CompletedToday: 3, CompletionRate: 85, YesterdayRate: 60},
			contains: "momentum",
		},
		{
			name:     "streak praise on multiples of three",
			stats:    NudgeStats{CompletedToday: 1, CompletionRate: 50, Streak: 6},
			contains: "streak",
		},
		{
			name:     "low band encouragement",
			stats:    NudgeStats{CompletedToday: 1, CompletionRate: 20, Streak: 1},
			contains: "Slow start",
		},
		{
			name:     "middle band encouragement",
			stats:    NudgeStats{CompletedToday: 1, CompletionRate: 50, Streak: 1},
			contains: "Solid progress",
		},
		{
			name:     "top band encouragement",
			stats:    NudgeStats{CompletedToday: 4, CompletionRate: 90, YesterdayRate: 85, Streak: 1},
			contains: "Excellent",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Nudge(tc.stats)
			if got == "" {
				t.Fatal("expected a message")
			}
			if !strings.Contains(strings.ToLower(got), strings.ToLower(tc.contains)) {
				t.Errorf("expected message containing %q, got %q", tc.contains, got)
			}
		})
	}

	t.Run("overdue beats the start small rule", func(t *testing.T) {
		withOverdue := Nudge(NudgeStats{Overdue: 1, OpenTasks: 3})
		withoutOverdue := Nudge(NudgeStats{OpenTasks: 3})
		if withOverdue == withoutOverdue {
			t.Error("expected the overdue rule to take precedence")
		}
	})

	t.Run("deterministic for identical stats", func(t *testing.T) {
		stats := NudgeStats{CompletedToday: 2, CompletionRate: 55, Streak: 2}
		first := Nudge(stats)
		for i := 0; i < 3; i++ {
			if got := Nudge(stats); got != first {
				t.Fatalf("message drifted: %q then %q", first, got)
			}
		}
	})
}
