package progress

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// streakLookback bounds how far back completion history is loaded when
// computing streaks.
const streakLookback = 365 * 24 * time.Hour

type Service interface {
	DailyMetrics(ctx context.Context, date time.Time) (*DailyMetrics, error)
	CurrentStreak(ctx context.Context) (int, error)
	WeeklyMetrics(ctx context.Context, end time.Time, days int) (*WeeklyMetrics, error)
	NudgeMessage(ctx context.Context) (string, error)
	WeeklyReport(ctx context.Context) (string, error)
	Overall(ctx context.Context) (*OverallProgress, error)
	RecentActivity(ctx context.Context, days int) ([]ActivityItem, error)

	// LogDailySummary writes the end-of-day metrics to the log. Metrics are
	// recomputable at any time, so nothing is persisted.
	LogDailySummary(ctx context.Context)
}

type service struct {
	tasks      task.Repository
	goals      goal.Repository
	blueprints blueprint.Repository
	categories category.Repository
	now        func() time.Time
}

func NewService(
	tasks task.Repository,
	goals goal.Repository,
	blueprints blueprint.Repository,
	categories category.Repository,
) Service {
	return &service{
		tasks:      tasks,
		goals:      goals,
		blueprints: blueprints,
		categories: categories,
		now:        time.Now,
	}
}

func (s *service) DailyMetrics(ctx context.Context, date time.Time) (*DailyMetrics, error) {
	log := config.WithContext(ctx)
	start, end := util.DayStart(date), util.DayEnd(date)

	total, err := s.tasks.CountDueBetween(start, end)
	if err != nil {
		log.WithError(err).Error("Failed to count tasks due")
		return nil, err
	}
	completed, err := s.tasks.CountCompletedDueBetween(start, end)
	if err != nil {
		return nil, err
	}
	completedToday, err := s.tasks.CountCompletionsBetween(start, end)
	if err != nil {
		return nil, err
	}
	overdue, err := s.tasks.CountOverdue(start)
	if err != nil {
		return nil, err
	}

	timeSpent, byCategory, err := s.slotTime(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DailyMetrics{
		Date:             start.Format("2006-01-02"),
		Total:            int(total),
		Completed:        int(completed),
		CompletionRate:   rate(completed, total),
		CompletedToday:   int(completedToday),
		TimeSpentMinutes: timeSpent,
		TimeByCategory:   byCategory,
		Overdue:          int(overdue),
	}, nil
}

// slotTime sums slot durations from the blueprint of the date's weekday.
// Slots are per-weekday templates rather than dated instances, so a day
// without a blueprint reports zero time.
func (s *service) slotTime(ctx context.Context, date time.Time) (int, map[string]int, error) {
	byCategory := make(map[string]int)

	bp, err := s.blueprints.FindActiveByDay(date.Weekday().String())
	if err != nil {
		if errors.Is(err, blueprint.ErrNotFound) {
			return 0, byCategory, nil
		}
		return 0, nil, err
	}

	slots, err := s.blueprints.FindSlots(&bp.ID, nil)
	if err != nil {
		return 0, nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return 0, nil, err
	}

	total := 0
	for _, slot := range slots {
		minutes := slot.EndTime.Minutes() - slot.StartTime.Minutes()
		if minutes <= 0 {
			continue
		}
		total += minutes
		if name, ok := names[slot.CategoryID.String()]; ok {
			byCategory[name] += minutes
		}
	}
	return total, byCategory, nil
}

func (s *service) CurrentStreak(ctx context.Context) (int, error) {
	now := s.now()
	completions, err := s.tasks.FindCompletedBetween(now.Add(-streakLookback), util.DayEnd(now))
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load completion history")
		return 0, err
	}

	dates := make([]time.Time, 0, len(completions))
	for _, t := range completions {
		if t.CompletionDate != nil {
			dates = append(dates, *t.CompletionDate)
		}
	}
	return Streak(dates, now), nil
}

func (s *service) WeeklyMetrics(ctx context.Context, end time.Time, days int) (*WeeklyMetrics, error) {
	if days <= 0 {
		days = 7
	}

	weekly := &WeeklyMetrics{
		StartDate:      util.DayStart(end.AddDate(0, 0, -(days - 1))).Format("2006-01-02"),
		EndDate:        util.DayStart(end).Format("2006-01-02"),
		TimeByCategory: make(map[string]int),
		Days:           make([]DailyMetrics, 0, days),
	}

	mostCompleted, leastCompleted := -1, -1
	for i := days - 1; i >= 0; i-- {
		daily, err := s.DailyMetrics(ctx, end.AddDate(0, 0, -i))
		if err != nil {
			return nil, err
		}
		weekly.Days = append(weekly.Days, *daily)
		weekly.TotalTasks += daily.Total
		weekly.CompletedTasks += daily.Completed
		for name, minutes := range daily.TimeByCategory {
			weekly.TimeByCategory[name] += minutes
		}
		if daily.Completed > mostCompleted {
			mostCompleted = daily.Completed
			weekly.MostProductiveDay = daily.Date
		}
		if daily.Total > 0 && (leastCompleted == -1 || daily.Completed < leastCompleted) {
			leastCompleted = daily.Completed
			weekly.LeastProductiveDay = daily.Date
		}
	}

	weekly.CompletionRate = rate(int64(weekly.CompletedTasks), int64(weekly.TotalTasks))

	streak, err := s.CurrentStreak(ctx)
	if err != nil {
		return nil, err
	}
	weekly.Streak = streak
	return weekly, nil
}

func (s *service) NudgeMessage(ctx context.Context) (string, error) {
	stats, err := s.nudgeStats(ctx)
	if err != nil {
		return "", err
	}
	return Nudge(*stats), nil
}

func (s *service) nudgeStats(ctx context.Context) (*NudgeStats, error) {
	log := config.WithContext(ctx)
	now := s.now()
	todayStart, todayEnd := util.DayStart(now), util.DayEnd(now)
	yesterdayStart, yesterdayEnd := todayStart.AddDate(0, 0, -1), util.DayEnd(todayStart.AddDate(0, 0, -1))

	completedToday, err := s.tasks.CountCompletionsBetween(todayStart, todayEnd)
	if err != nil {
		log.WithError(err).Error("Failed to gather nudge stats")
		return nil, err
	}
	completedYesterday, err := s.tasks.CountCompletionsBetween(yesterdayStart, yesterdayEnd)
	if err != nil {
		return nil, err
	}
	overdue, err := s.tasks.CountOverdue(now)
	if err != nil {
		return nil, err
	}
	open, err := s.tasks.CountIncomplete()
	if err != nil {
		return nil, err
	}
	dueSoon, err := s.tasks.CountIncompleteDueBetween(now, now.Add(48*time.Hour))
	if err != nil {
		return nil, err
	}

	todayTotal, err := s.tasks.CountDueBetween(todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	todayDone, err := s.tasks.CountCompletedDueBetween(todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	yesterdayTotal, err := s.tasks.CountDueBetween(yesterdayStart, yesterdayEnd)
	if err != nil {
		return nil, err
	}
	yesterdayDone, err := s.tasks.CountCompletedDueBetween(yesterdayStart, yesterdayEnd)
	if err != nil {
		return nil, err
	}

	streak, err := s.CurrentStreak(ctx)
	if err != nil {
		return nil, err
	}

	return &NudgeStats{
		CompletedToday:     int(completedToday),
		CompletedYesterday: int(completedYesterday),
		Overdue:            int(overdue),
		OpenTasks:          int(open),
		DueSoon:            int(dueSoon),
		CompletionRate:     rate(todayDone, todayTotal),
		YesterdayRate:      rate(yesterdayDone, yesterdayTotal),
		Streak:             streak,
	}, nil
}

func (s *service) Overall(ctx context.Context) (*OverallProgress, error) {
	log := config.WithContext(ctx)
	now := s.now()
	windowStart := now.AddDate(0, 0, -30)

	activeGoals, err := s.goals.CountActive()
	if err != nil {
		log.WithError(err).Error("Failed to count goals")
		return nil, err
	}
	goalsCompleted, err := s.goals.CountCompletedBetween(windowStart, now)
	if err != nil {
		return nil, err
	}
	tasksCompleted30d, err := s.tasks.CountCompletionsBetween(windowStart, now)
	if err != nil {
		return nil, err
	}
	tasksCompletedEver, err := s.tasks.CountCompleted()
	if err != nil {
		return nil, err
	}
	open, err := s.tasks.CountIncomplete()
	if err != nil {
		return nil, err
	}
	due30d, err := s.tasks.CountDueBetween(windowStart, now)
	if err != nil {
		return nil, err
	}
	done30d, err := s.tasks.CountCompletedDueBetween(windowStart, now)
	if err != nil {
		return nil, err
	}
	streak, err := s.CurrentStreak(ctx)
	if err != nil {
		return nil, err
	}

	return &OverallProgress{
		ActiveGoals:        activeGoals,
		GoalsCompleted30d:  goalsCompleted,
		TasksCompleted30d:  tasksCompleted30d,
		TasksCompletedEver: tasksCompletedEver,
		OpenTasks:          open,
		Streak:             streak,
		CompletionRate30d:  rate(done30d, due30d),
	}, nil
}

func (s *service) RecentActivity(ctx context.Context, days int) ([]ActivityItem, error) {
	if days <= 0 {
		days = 7
	}
	now := s.now()

	completions, err := s.tasks.FindCompletedBetween(util.DayStart(now.AddDate(0, 0, -(days-1))), util.DayEnd(now))
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load recent activity")
		return nil, err
	}

	items := make([]ActivityItem, 0, len(completions))
	for _, t := range completions {
		if t.CompletionDate == nil {
			continue
		}
		items = append(items, ActivityItem{Title: t.Title, CompletedAt: *t.CompletionDate})
	}
	return items, nil
}

func (s *service) LogDailySummary(ctx context.Context) {
	log := config.WithContext(ctx)

	daily, err := s.DailyMetrics(ctx, s.now())
	if err != nil {
		log.WithError(err).Error("Failed to build daily summary")
		return
	}

	log.WithFields(logrus.Fields{
		"date":            daily.Date,
		"total":           daily.Total,
		"completed":       daily.Completed,
		"completion_rate": daily.CompletionRate,
		"completed_today": daily.CompletedToday,
		"overdue":         daily.Overdue,
	}).Info("Daily progress summary")
}

func (s *service) categoryNames(ctx context.Context) (map[string]string, error) {
	categories, err := s.categories.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load categories")
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID.String()] = c.Name
	}
	return names, nil
}

func rate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
