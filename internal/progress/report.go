package progress

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// WeeklyReport renders the last seven days as a markdown document.
func (s *service) WeeklyReport(ctx context.Context) (string, error) {
	weekly, err := s.WeeklyMetrics(ctx, s.now(), 7)
	if err != nil {
		return "", err
	}
	return renderWeeklyReport(weekly), nil
}

func renderWeeklyReport(w *WeeklyMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Progress Report\n\n")
	fmt.Fprintf(&b, "%s to %s\n\n", w.StartDate, w.EndDate)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Tasks completed: %d of %d (%.1f%%)\n", w.CompletedTasks, w.TotalTasks, w.CompletionRate)
	fmt.Fprintf(&b, "- Current streak: %d day(s)\n", w.Streak)
	fmt.Fprintf(&b, "- Most productive day: %s\n", w.MostProductiveDay)
	fmt.Fprintf(&b, "- Least productive day: %s\n", w.LeastProductiveDay)

	if len(w.TimeByCategory) > 0 {
		fmt.Fprintf(&b, "\n## Time by Category\n\n")
		names := make([]string, 0, len(w.TimeByCategory))
		for name := range w.TimeByCategory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- %s: %d min\n", name, w.TimeByCategory[name])
		}
	}

	fmt.Fprintf(&b, "\n## Daily Breakdown\n\n")
	fmt.Fprintf(&b, "| Date | Completed | Total | Rate |\n")
	fmt.Fprintf(&b, "|------|-----------|-------|------|\n")
	for _, day := range w.Days {
		fmt.Fprintf(&b, "| %s | %d | %d | %.1f%% |\n", day.Date, day.Completed, day.Total, day.CompletionRate)
	}

	return b.String()
}
