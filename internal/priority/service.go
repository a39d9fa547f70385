package priority

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// DefaultDailyLimit caps the daily priority list when the caller does not ask
// for a specific size.
const DefaultDailyLimit = 5

type Service interface {
	// RankAll scores and orders every incomplete task.
	RankAll(ctx context.Context) ([]ScoredTask, error)

	// DailyPriorities returns today's pool ranked ascending: everything due
	// before tomorrow or without a deadline, plus all open high-priority
	// tasks. limit <= 0 falls back to DefaultDailyLimit.
	DailyPriorities(ctx context.Context, limit int) ([]ScoredTask, error)

	// SuggestNext returns the single most urgent task from the daily pool,
	// or nil when the pool is empty.
	SuggestNext(ctx context.Context) (*ScoredTask, error)
}

type service struct {
	tasks      task.Repository
	goals      goal.Repository
	categories category.Repository
	weights    Weights
	now        func() time.Time
}

func NewService(tasks task.Repository, goals goal.Repository, categories category.Repository) Service {
	return &service{
		tasks:      tasks,
		goals:      goals,
		categories: categories,
		weights:    CategoryWeights,
		now:        time.Now,
	}
}

func (s *service) RankAll(ctx context.Context) ([]ScoredTask, error) {
	tasks, err := s.tasks.FindIncomplete()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load tasks for ranking")
		return nil, err
	}
	return s.rank(ctx, tasks)
}

func (s *service) DailyPriorities(ctx context.Context, limit int) ([]ScoredTask, error) {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}

	pool, err := s.dailyPool(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := s.rank(ctx, pool)
	if err != nil {
		return nil, err
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *service) SuggestNext(ctx context.Context) (*ScoredTask, error) {
	ranked, err := s.DailyPriorities(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

// dailyPool unions the due-or-undated set with the open high-priority set,
// keeping first-seen order so ranking stays deterministic.
func (s *service) dailyPool(ctx context.Context) ([]task.Task, error) {
	log := config.WithContext(ctx)
	tomorrow := util.DayStart(s.now()).AddDate(0, 0, 1)

	due, err := s.tasks.FindDueBeforeOrUndated(tomorrow)
	if err != nil {
		log.WithError(err).Error("Failed to load due tasks")
		return nil, err
	}
	high, err := s.tasks.FindHighPriorityNotDueBefore(tomorrow)
	if err != nil {
		log.WithError(err).Error("Failed to load high priority tasks")
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(due))
	pool := make([]task.Task, 0, len(due)+len(high))
	for _, t := range append(due, high...) {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		pool = append(pool, t)
	}
	return pool, nil
}

type goalInfo struct {
	title    string
	category string
	progress int
}

func (s *service) rank(ctx context.Context, tasks []task.Task) ([]ScoredTask, error) {
	log := config.WithContext(ctx)
	now := s.now()

	goals, err := s.goalInfos(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]Input, 0, len(tasks))
	for _, t := range tasks {
		dependents, err := s.tasks.CountDependents(t.ID)
		if err != nil {
			log.WithError(err).Error("Failed to count dependents")
			return nil, err
		}
		info := goals[t.GoalID]
		inputs = append(inputs, Input{
			Task:         t,
			CategoryName: info.category,
			GoalTitle:    info.title,
			GoalProgress: info.progress,
			Dependents:   int(dependents),
		})
	}

	ranked := Rank(s.weights, inputs, now)
	out := make([]ScoredTask, len(ranked))
	for i, sc := range ranked {
		out[i] = NewScoredTask(sc, now)
	}
	return out, nil
}

func (s *service) goalInfos(ctx context.Context) (map[uuid.UUID]goalInfo, error) {
	log := config.WithContext(ctx)

	categories, err := s.categories.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to load categories")
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	goals, err := s.goals.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to load goals")
		return nil, err
	}
	infos := make(map[uuid.UUID]goalInfo, len(goals))
	for _, g := range goals {
		total, completed, err := s.goals.TaskCounts(g.ID)
		if err != nil {
			log.WithError(err).Error("Failed to count goal tasks")
			return nil, err
		}
		progress := 0
		if total > 0 {
			progress = int(completed * 100 / total)
		}
		infos[g.ID] = goalInfo{title: g.Title, category: names[g.CategoryID], progress: progress}
	}
	return infos, nil
}
