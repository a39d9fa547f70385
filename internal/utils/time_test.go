package util

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseTimeOfDay("06:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour != 6 || got.Minute != 30 {
			t.Errorf("expected 06:30, got %s", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "25:00", "6:3", "noon"} {
			if _, err := ParseTimeOfDay(s); err == nil {
				t.Errorf("expected error for %q", s)
			}
		}
	})
}

func TestTimeOfDayString(t *testing.T) {
	if got := NewTimeOfDay(9, 5).String(); got != "09:05" {
		t.Errorf("expected 09:05, got %s", got)
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	morning := NewTimeOfDay(6, 0)
	evening := NewTimeOfDay(17, 0)
	if !morning.Before(evening) {
		t.Error("expected 06:00 before 17:00")
	}
	if evening.Before(morning) {
		t.Error("did not expect 17:00 before 06:00")
	}
	if morning.Before(morning) {
		t.Error("a time is not before itself")
	}
}

func TestTimeOfDayOn(t *testing.T) {
	date := time.Date(2025, 3, 10, 22, 45, 12, 0, time.UTC)
	got := NewTimeOfDay(17, 0).On(date)
	want := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	b, err := json.Marshal(NewTimeOfDay(6, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"06:50"` {
		t.Errorf("expected quoted 06:50, got %s", b)
	}

	var parsed TimeOfDay
	if err := json.Unmarshal([]byte(`"21:00"`), &parsed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Hour != 21 || parsed.Minute != 0 {
		t.Errorf("expected 21:00, got %s", parsed)
	}
}

func TestTimeOfDayScan(t *testing.T) {
	t.Run("postgres time string", func(t *testing.T) {
		var parsed TimeOfDay
		if err := parsed.Scan("06:50:00"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Hour != 6 || parsed.Minute != 50 {
			t.Errorf("expected 06:50, got %s", parsed)
		}
	})

	t.Run("time value", func(t *testing.T) {
		var parsed TimeOfDay
		if err := parsed.Scan(time.Date(2000, 1, 1, 12, 30, 0, 0, time.UTC)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Hour != 12 || parsed.Minute != 30 {
			t.Errorf("expected 12:30, got %s", parsed)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		var parsed TimeOfDay
		if err := parsed.Scan(42); err == nil {
			t.Error("expected an error for int input")
		}
	})
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 10, 15, 42, 7, 123, time.UTC)

	start := DayStart(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("unexpected day start: %v", start)
	}

	end := DayEnd(at)
	if !end.After(at) || !end.Before(start.AddDate(0, 0, 1)) {
		t.Errorf("day end out of range: %v", end)
	}

	if !SameDay(start, end) {
		t.Error("expected start and end on the same day")
	}
	if SameDay(end, start.AddDate(0, 0, 1)) {
		t.Error("did not expect different days to match")
	}
}
