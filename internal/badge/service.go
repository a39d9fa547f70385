package badge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/progress"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// categoryMasterMinimum keeps a single trivial task from awarding the
// category badge.
const categoryMasterMinimum = 5

// BadgeStatus is a catalog entry merged with its earned state.
type BadgeStatus struct {
	Badge
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

type Service interface {
	// List merges the catalog with the persisted earned set.
	List(ctx context.Context) ([]BadgeStatus, error)

	// Earned returns the persisted award records.
	Earned(ctx context.Context) ([]EarnedBadge, error)

	// CheckForNewBadges evaluates the catalog against current stats and
	// persists anything newly earned, returning just the new awards.
	CheckForNewBadges(ctx context.Context) ([]EarnedBadge, error)
}

type service struct {
	repo     Repository
	tasks    task.Repository
	goals    goal.Repository
	progress progress.Service
	now      func() time.Time
}

func NewService(repo Repository, tasks task.Repository, goals goal.Repository, progressSvc progress.Service) Service {
	return &service{
		repo:     repo,
		tasks:    tasks,
		goals:    goals,
		progress: progressSvc,
		now:      time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]BadgeStatus, error) {
	earned, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load earned badges")
		return nil, err
	}

	earnedAt := make(map[string]time.Time, len(earned))
	for _, e := range earned {
		earnedAt[e.BadgeID] = e.EarnedAt
	}

	statuses := make([]BadgeStatus, 0, len(Catalog))
	for _, b := range Catalog {
		status := BadgeStatus{Badge: b}
		if at, ok := earnedAt[b.ID]; ok {
			at := at
			status.EarnedAt = &at
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (s *service) Earned(ctx context.Context) ([]EarnedBadge, error) {
	earned, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load earned badges")
		return nil, err
	}
	return earned, nil
}

func (s *service) CheckForNewBadges(ctx context.Context) ([]EarnedBadge, error) {
	log := config.WithContext(ctx)

	stats, err := s.collectStats(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to load earned badges")
		return nil, err
	}
	earned := make(map[string]bool, len(existing))
	for _, e := range existing {
		earned[e.BadgeID] = true
	}

	snapshot, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}

	var awarded []EarnedBadge
	for _, b := range Evaluate(*stats, earned) {
		record := EarnedBadge{
			BadgeID:  b.ID,
			Name:     b.Name,
			Icon:     b.Icon,
			Snapshot: snapshot,
		}
		if err := s.repo.Create(&record); err != nil {
			log.WithError(err).WithField("badge", b.ID).Error("Failed to persist badge")
			return nil, err
		}
		log.WithField("badge", b.ID).Info("Badge earned")
		awarded = append(awarded, record)
	}
	return awarded, nil
}

func (s *service) collectStats(ctx context.Context) (*Stats, error) {
	log := config.WithContext(ctx)
	now := s.now()

	streak, err := s.progress.CurrentStreak(ctx)
	if err != nil {
		return nil, err
	}
	totalCompleted, err := s.tasks.CountCompleted()
	if err != nil {
		log.WithError(err).Error("Failed to count completed tasks")
		return nil, err
	}

	daily, err := s.progress.DailyMetrics(ctx, now)
	if err != nil {
		return nil, err
	}
	weekly, err := s.progress.WeeklyMetrics(ctx, now, 7)
	if err != nil {
		return nil, err
	}

	mastered, err := s.categoryMastered()
	if err != nil {
		log.WithError(err).Error("Failed to check category completion")
		return nil, err
	}

	earlyBird, nightOwl, weekendWarrior, err := s.completionPatterns(now)
	if err != nil {
		log.WithError(err).Error("Failed to scan completion times")
		return nil, err
	}

	return &Stats{
		Streak:           streak,
		TotalCompleted:   int(totalCompleted),
		PerfectDay:       daily.Total > 0 && daily.Completed == daily.Total,
		PerfectWeek:      weekly.TotalTasks > 0 && weekly.CompletedTasks == weekly.TotalTasks,
		CategoryMastered: mastered,
		EarlyBird:        earlyBird,
		NightOwl:         nightOwl,
		WeekendWarrior:   weekendWarrior,
	}, nil
}

// categoryMastered reports whether any category with a meaningful task count
// has every task completed.
func (s *service) categoryMastered() (bool, error) {
	goals, err := s.goals.FindAll()
	if err != nil {
		return false, err
	}

	type tally struct{ total, completed int64 }
	byCategory := make(map[uuid.UUID]*tally)
	for _, g := range goals {
		total, completed, err := s.goals.TaskCounts(g.ID)
		if err != nil {
			return false, err
		}
		t := byCategory[g.CategoryID]
		if t == nil {
			t = &tally{}
			byCategory[g.CategoryID] = t
		}
		t.total += total
		t.completed += completed
	}

	for _, t := range byCategory {
		if t.total >= categoryMasterMinimum && t.completed == t.total {
			return true, nil
		}
	}
	return false, nil
}

// completionPatterns scans the last week of completion timestamps.
func (s *service) completionPatterns(now time.Time) (earlyBird, nightOwl, weekendWarrior bool, err error) {
	completions, err := s.tasks.FindCompletedBetween(util.DayStart(now.AddDate(0, 0, -6)), util.DayEnd(now))
	if err != nil {
		return false, false, false, err
	}

	var saturday, sunday bool
	for _, t := range completions {
		if t.CompletionDate == nil {
			continue
		}
		switch hour := t.CompletionDate.Hour(); {
		case hour < 8:
			earlyBird = true
		case hour >= 22:
			nightOwl = true
		}
		switch t.CompletionDate.Weekday() {
		case time.Saturday:
			saturday = true
		case time.Sunday:
			sunday = true
		}
	}
	return earlyBird, nightOwl, saturday && sunday, nil
}
