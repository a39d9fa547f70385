package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mentora-app/mentora-backend/internal/blueprint"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// Candidate is an open task annotated with the goal and category facts the
// planner needs.
type Candidate struct {
	Task         task.Task
	CategoryID   uuid.UUID
	CategoryName string
	GoalID       uuid.UUID
}

// Placement binds a candidate to a slot from the catalog.
type Placement struct {
	Candidate
	Slot Slot
}

// Generator rebuilds the weekly schedule from the current open tasks.
type Generator interface {
	// GenerateWeekly deletes every blueprint and time slot, then rebuilds
	// one blueprint per weekday inside a single transaction. A false return
	// means the transaction rolled back and nothing changed.
	GenerateWeekly(ctx context.Context) bool
}

type generator struct {
	db  *gorm.DB
	cfg PlannerConfig
	now func() time.Time
}

func NewGenerator(db *gorm.DB) Generator {
	return &generator{db: db, cfg: DefaultPlannerConfig(), now: time.Now}
}

func (g *generator) GenerateWeekly(ctx context.Context) bool {
	log := config.WithContext(ctx)
	now := g.now()

	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&blueprint.TimeSlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&blueprint.Blueprint{}).Error; err != nil {
			return err
		}

		var tasks []task.Task
		err := tx.Preload("Goal").Preload("Goal.Category").
			Where("completed = ?", false).
			Order("created_at").
			Find(&tasks).Error
		if err != nil {
			return err
		}

		candidates := make([]Candidate, 0, len(tasks))
		for _, t := range tasks {
			candidates = append(candidates, Candidate{
				Task:         t,
				CategoryID:   t.Goal.CategoryID,
				CategoryName: t.Goal.Category.Name,
				GoalID:       t.GoalID,
			})
		}

		for _, day := range blueprint.Weekdays {
			day := day
			bp := blueprint.Blueprint{
				Name:      day + " Schedule",
				DayOfWeek: &day,
				IsActive:  true,
			}
			if err := tx.Create(&bp).Error; err != nil {
				return err
			}

			for _, p := range PlanDay(g.cfg, day, candidates, now) {
				taskID := p.Task.ID
				goalID := p.GoalID
				slot := blueprint.TimeSlot{
					BlueprintID: bp.ID,
					CategoryID:  p.CategoryID,
					Title:       p.Task.Title,
					StartTime:   p.Slot.Start,
					EndTime:     p.Slot.End,
					GoalID:      &goalID,
					TaskID:      &taskID,
				}
				if err := tx.Create(&slot).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Weekly schedule generation failed")
		return false
	}

	log.Info("Weekly schedule generated")
	return true
}

// PlanDay runs the full per-day pipeline: eligibility, category balancing and
// slot allocation. Pure over its inputs.
func PlanDay(cfg PlannerConfig, day string, candidates []Candidate, now time.Time) []Placement {
	eligible := make([]Candidate, 0, len(candidates))
	tomorrowEnd := util.DayEnd(now.AddDate(0, 0, 1))
	for _, c := range candidates {
		if eligibleForDay(cfg, c, day, tomorrowEnd) {
			eligible = append(eligible, c)
		}
	}
	return allocateSlots(cfg, balanceDay(cfg, eligible))
}

// eligibleForDay applies the urgency override before the day-preference
// table. Categories absent from the table qualify every day.
func eligibleForDay(cfg PlannerConfig, c Candidate, day string, tomorrowEnd time.Time) bool {
	if c.Task.Deadline != nil && !c.Task.Deadline.After(tomorrowEnd) {
		return true
	}
	days, ok := cfg.DayPreferences[c.CategoryName]
	if !ok {
		return true
	}
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// balanceDay selects at most SlotsPerDay candidates, each category capped at
// its quota. Three passes, high priority first, so urgent work claims a
// category's budget before anything below it.
func balanceDay(cfg PlannerConfig, candidates []Candidate) []Candidate {
	taken := make(map[string]int)
	selected := make([]Candidate, 0, cfg.SlotsPerDay)

	for _, p := range []task.Priority{task.PriorityHigh, task.PriorityMedium, task.PriorityLow} {
		for _, c := range candidates {
			if c.Task.Priority != p {
				continue
			}
			if len(selected) >= cfg.SlotsPerDay {
				return selected
			}
			if taken[c.CategoryName] >= cfg.quota(c.CategoryName) {
				continue
			}
			taken[c.CategoryName]++
			selected = append(selected, c)
		}
	}
	return selected
}

// allocateSlots places candidates into the catalog in order. Preferred bands
// are scanned first, then the whole catalog; a candidate that finds no free
// slot is dropped, which is a capacity limit rather than an error.
func allocateSlots(cfg PlannerConfig, candidates []Candidate) []Placement {
	used := make(map[string]bool)
	placements := make([]Placement, 0, len(candidates))

	for _, c := range candidates {
		slot, ok := findFreeSlot(cfg, c.CategoryName, used)
		if !ok {
			continue
		}
		used[slot.Key()] = true
		placements = append(placements, Placement{Candidate: c, Slot: slot})
	}
	return placements
}

func findFreeSlot(cfg PlannerConfig, categoryName string, used map[string]bool) (Slot, bool) {
	bands, ok := cfg.BandPreferences[categoryName]
	if !ok {
		bands = bandOrder
	}
	if slot, ok := scanBands(cfg, bands, used); ok {
		return slot, true
	}
	return scanBands(cfg, bandOrder, used)
}

func scanBands(cfg PlannerConfig, bands []Band, used map[string]bool) (Slot, bool) {
	for _, band := range bands {
		for _, slot := range cfg.Catalog[band] {
			if !used[slot.Key()] {
				return slot, true
			}
		}
	}
	return Slot{}, false
}
