package blueprint

import (
	"context"
	"errors"
	"time"

	"github.com/mentora-app/mentora-backend/internal/category"
	"github.com/mentora-app/mentora-backend/internal/config"
	"github.com/mentora-app/mentora-backend/internal/goal"
	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
	"gorm.io/gorm"
)

// Time-of-day blocks. An activity's deadline lands on the end of its
// preferred block.
var timeBlocks = map[string]util.TimeOfDay{
	"morning":   util.NewTimeOfDay(12, 0),
	"afternoon": util.NewTimeOfDay(17, 0),
	"evening":   util.NewTimeOfDay(22, 0),
}

var weekdayAbbrevs = map[string]time.Weekday{
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
	"Sun": time.Sunday,
}

var importanceToPriority = map[string]task.Priority{
	"high":   task.PriorityHigh,
	"medium": task.PriorityMedium,
	"low":    task.PriorityLow,
}

// categoryColors assigns a stable color to the categories a blueprint
// document is expected to contain. Unknown names fall back to gray.
var categoryColors = map[string]string{
	"Class 11":        "#4285F4",
	"AI Tools":        "#0F9D58",
	"Freelancing":     "#F4B400",
	"Certifications":  "#DB4437",
	"Career Planning": "#9C27B0",
}

const masterPlanWindow = 90 * 24 * time.Hour

type Importer interface {
	// ImportFromFile loads the document at path and imports it. Returns false
	// when the document is missing/malformed or the import transaction fails.
	ImportFromFile(ctx context.Context, path string) bool

	// Import maps a parsed document onto Category/Goal/Task rows inside one
	// transaction. Re-importing the same document is a no-op.
	Import(ctx context.Context, doc Document) bool
}

type importer struct {
	db  *gorm.DB
	now func() time.Time
}

func NewImporter(db *gorm.DB) Importer {
	return &importer{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (i *importer) ImportFromFile(ctx context.Context, path string) bool {
	doc := LoadDocument(ctx, path)
	if doc == nil {
		return false
	}
	return i.Import(ctx, doc)
}

func (i *importer) Import(ctx context.Context, doc Document) bool {
	log := config.WithContext(ctx)
	now := i.now()

	err := i.db.Transaction(func(tx *gorm.DB) error {
		for categoryName, activities := range doc {
			cat, err := findOrCreateCategory(tx, categoryName)
			if err != nil {
				return err
			}

			masterPlan, err := findOrCreateMasterPlan(tx, cat, now)
			if err != nil {
				return err
			}

			for _, activity := range activities {
				var existing task.Task
				err := tx.First(&existing, "title = ? AND goal_id = ?", activity.Name, masterPlan.ID).Error
				if err == nil {
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}

				deadline := ActivityDeadline(activity, now)
				priority, ok := importanceToPriority[activity.Importance]
				if !ok {
					priority = task.PriorityMedium
				}

				t := task.Task{
					Title:       activity.Name,
					Description: "Auto-generated task from blueprint",
					GoalID:      masterPlan.ID,
					Deadline:    &deadline,
					Priority:    priority,
				}
				if err := tx.Create(&t).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		log.WithError(err).Error("Failed to import blueprint")
		return false
	}

	log.Info("Blueprint imported")
	return true
}

func findOrCreateCategory(tx *gorm.DB, name string) (*category.Category, error) {
	var cat category.Category
	err := tx.First(&cat, "name = ?", name).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat = category.Category{
		Name:        name,
		Description: "Tasks related to " + name,
		Color:       ColorForCategory(name),
	}
	if err := tx.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func findOrCreateMasterPlan(tx *gorm.DB, cat *category.Category, now time.Time) (*goal.Goal, error) {
	title := cat.Name + " Master Plan"

	var g goal.Goal
	err := tx.First(&g, "title = ? AND category_id = ?", title, cat.ID).Error
	if err == nil {
		return &g, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	end := now.Add(masterPlanWindow)
	g = goal.Goal{
		Title:       title,
		Description: "Master plan for " + cat.Name + " tasks",
		CategoryID:  cat.ID,
		StartDate:   now,
		EndDate:     &end,
	}
	if err := tx.Create(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ColorForCategory returns the fixed color for a known category name, gray
// otherwise.
func ColorForCategory(name string) string {
	if color, ok := categoryColors[name]; ok {
		return color
	}
	return category.DefaultColor
}

// ActivityDeadline finds the first of the activity's preferred weekdays
// within the next 7 days, defaulting to 3 days out, and pins the deadline to
// the end of the activity's preferred time block.
func ActivityDeadline(activity Activity, now time.Time) time.Time {
	daysAhead := 0

	if len(activity.Days) > 0 {
		preferred := make(map[time.Weekday]bool, len(activity.Days))
		for _, abbrev := range activity.Days {
			if wd, ok := weekdayAbbrevs[abbrev]; ok {
				preferred[wd] = true
			}
		}
		for days := 1; days <= 7; days++ {
			if preferred[now.AddDate(0, 0, days).Weekday()] {
				daysAhead = days
				break
			}
		}
	}

	if daysAhead == 0 {
		daysAhead = 3
	}

	blockEnd, ok := timeBlocks[activity.PreferredTime]
	if !ok {
		blockEnd = timeBlocks["afternoon"]
	}

	return blockEnd.On(now.AddDate(0, 0, daysAhead))
}
