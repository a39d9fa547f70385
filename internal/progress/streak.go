package progress

import "time"

// Streak counts consecutive days with at least one completion, walking
// backward from yesterday, plus one when today already has a completion.
// The count stops at the first empty day.
func Streak(completions []time.Time, now time.Time) int {
	days := make(map[string]bool, len(completions))
	for _, c := range completions {
		days[c.Format("2006-01-02")] = true
	}

	streak := 0
	for d := 1; ; d++ {
		if !days[now.AddDate(0, 0, -d).Format("2006-01-02")] {
			break
		}
		streak++
	}
	if days[now.Format("2006-01-02")] {
		streak++
	}
	return streak
}
