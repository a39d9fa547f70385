package blueprint

import (
	"testing"
	"time"

	"github.com/mentora-app/mentora-backend/internal/category"
)

func TestActivityDeadline(t *testing.T) {
	// A Monday.
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("next preferred weekday within seven days", func(t *testing.T) {
		activity := Activity{Days: []string{"Wed"}, PreferredTime: "morning"}
		got := ActivityDeadline(activity, now)
		want := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("same weekday lands a full week out", func(t *testing.T) {
		// The scan starts tomorrow, so Monday resolves to next Monday.
		activity := Activity{Days: []string{"Mon"}, PreferredTime: "evening"}
		got := ActivityDeadline(activity, now)
		want := time.Date(2025, 3, 17, 22, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("no preferred days defaults to three days out", func(t *testing.T) {
		activity := Activity{PreferredTime: "afternoon"}
		got := ActivityDeadline(activity, now)
		want := time.Date(2025, 3, 13, 17, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("unknown abbreviations default to three days out", func(t *testing.T) {
		activity := Activity{Days: []string{"Xyz"}, PreferredTime: "morning"}
		got := ActivityDeadline(activity, now)
		want := time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("block end times", func(t *testing.T) {
		for block, wantHour := range map[string]int{"morning": 12, "afternoon": 17, "evening": 22} {
			activity := Activity{Days: []string{"Tue"}, PreferredTime: block}
			if got := ActivityDeadline(activity, now); got.Hour() != wantHour {
				t.Errorf("%s: expected hour %d, got %d", block, wantHour, got.Hour())
			}
		}
	})

	t.Run("unknown block falls back to afternoon", func(t *testing.T) {
		activity := Activity{Days: []string{"Tue"}, PreferredTime: "midnight"}
		if got := ActivityDeadline(activity, now); got.Hour() != 17 {
			t.Errorf("expected hour 17, got %d", got.Hour())
		}
	})
}

func TestColorForCategory(t *testing.T) {
	if got := ColorForCategory("Class 11"); got != "#4285F4" {
		t.Errorf("expected #4285F4, got %s", got)
	}
	if got := ColorForCategory("Gardening"); got != category.DefaultColor {
		t.Errorf("expected the default color, got %s", got)
	}
}
