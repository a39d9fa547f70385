package progress

import (
	"testing"
	"time"
)

func TestStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	at := func(daysAgo, hour int) time.Time {
		return now.AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour)
	}

	t.Run("no completions means no streak", func(t *testing.T) {
		if got := Streak(nil, now); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("two prior days plus today", func(t *testing.T) {
		completions := []time.Time{at(2, 9), at(1, 20), at(0, 8)}
		if got := Streak(completions, now); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("today alone counts as one", func(t *testing.T) {
		completions := []time.Time{at(0, 8)}
		if got := Streak(completions, now); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("gap stops the walk", func(t *testing.T) {
		// Day -1 is empty, so days -2 and -3 do not count.
		completions := []time.Time{at(3, 9), at(2, 9), at(0, 8)}
		if got := Streak(completions, now); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("streak survives without a completion today", func(t *testing.T) {
		completions := []time.Time{at(2, 9), at(1, 20)}
		if got := Streak(completions, now); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})

	t.Run("multiple completions on one day count once", func(t *testing.T) {
		completions := []time.Time{at(1, 9), at(1, 14), at(1, 22)}
		if got := Streak(completions, now); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})
}
