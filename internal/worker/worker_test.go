package worker

import (
	"testing"
	"time"
)

func TestUntilNext(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("later today", func(t *testing.T) {
		if got := untilNext(now, 23, 59); got != 11*time.Hour+59*time.Minute {
			t.Fatalf("unexpected wait: %v", got)
		}
	})

	t.Run("already past rolls to tomorrow", func(t *testing.T) {
		if got := untilNext(now, 0, 0); got != 12*time.Hour {
			t.Fatalf("unexpected wait: %v", got)
		}
	})

	t.Run("exact moment rolls to tomorrow", func(t *testing.T) {
		if got := untilNext(now, 12, 0); got != 24*time.Hour {
			t.Fatalf("unexpected wait: %v", got)
		}
	})
}
