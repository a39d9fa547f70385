package progress

import "fmt"

// NudgeStats is the day snapshot the nudge decision table evaluates.
type NudgeStats struct {
	CompletedToday     int
	CompletedYesterday int
	Overdue            int
	OpenTasks          int
	DueSoon            int
	CompletionRate     float64
	YesterdayRate      float64
	Streak             int
}

// Nudge picks one message from a fixed decision table. The rules are checked
// in a fixed order and the first match wins, so the same stats always produce
// the same message.
func Nudge(s NudgeStats) string {
	switch {
	case s.CompletedToday == 0 && s.Overdue > 0:
		return fmt.Sprintf("You have %d overdue task(s). Knock out the oldest one first.", s.Overdue)
	case s.CompletedToday == 0 && s.OpenTasks > 0:
		return "Nothing checked off yet today. Start small: pick one quick task and finish it."
	case s.CompletedToday == 0:
		return "Your plate is empty. A good moment to plan the next goal."
	case s.DueSoon > 3:
		return fmt.Sprintf("%d tasks are due within 48 hours. Worth prioritizing before they pile up.", s.DueSoon)
	case s.CompletedToday > 5 && s.CompletedYesterday > 5:
		return "Two heavy days in a row. Strong pace, but watch for burnout."
	case s.CompletionRate > 70 && s.CompletionRate-s.YesterdayRate > 10:
		return "Great momentum! Your completion rate jumped since yesterday."
	case s.Streak > 0 && s.Streak%3 == 0:
		return fmt.Sprintf("%d-day streak! Keep the chain going.", s.Streak)
	case s.CompletionRate < 30:
		return "Slow start today. One more finished task would change the picture."
	case s.CompletionRate < 70:
		return "Solid progress so far. A couple more tasks and today is a win."
	default:
		return "Excellent day! Nearly everything is done."
	}
}
