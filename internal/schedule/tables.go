package schedule

import (
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// Band names a block of the day that slots belong to.
type Band string

const (
	BandMorning   Band = "morning"
	BandAfternoon Band = "afternoon"
	BandEvening   Band = "evening"
)

// bandOrder is the scan order when a category has no band preference or its
// preferred bands are full.
var bandOrder = []Band{BandMorning, BandAfternoon, BandEvening}

// Slot is one 50-minute interval from the fixed catalog.
type Slot struct {
	Start util.TimeOfDay
	End   util.TimeOfDay
}

// Key identifies a slot within a day, e.g. "06:00-06:50".
func (s Slot) Key() string {
	return s.Start.String() + "-" + s.End.String()
}

// PlannerConfig holds every heuristic table the generator consults. The
// numbers live in one named structure so tests can substitute their own and
// so tuning stays in one place.
type PlannerConfig struct {
	// SlotsPerDay caps how many tasks a single day may carry.
	SlotsPerDay int

	// Balance maps a category name to its target share of the day in
	// percent. A category's quota is max(1, SlotsPerDay*percent/100);
	// categories absent from the table get the minimum quota of one.
	Balance map[string]int

	// DayPreferences maps a category name to the weekdays it prefers.
	// Categories absent from the table are eligible every day.
	DayPreferences map[string][]string

	// BandPreferences maps a category name to the bands it prefers.
	// Categories absent from the table scan the full catalog.
	BandPreferences map[string][]Band

	// Catalog lists the fixed slots per band.
	Catalog map[Band][]Slot
}

// DefaultPlannerConfig returns the production heuristic tables.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		SlotsPerDay: 8,
		Balance: map[string]int{
			"Class 11":        40,
			"Certifications":  20,
			"Freelancing":     20,
			"AI Tools":        10,
			"Career Planning": 10,
		},
		DayPreferences: map[string][]string{
			"Class 11":        {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			"AI Tools":        {"Monday", "Wednesday", "Friday"},
			"Freelancing":     {"Tuesday", "Thursday", "Saturday"},
			"Certifications":  {"Monday", "Wednesday", "Friday"},
			"Career Planning": {"Saturday", "Sunday"},
		},
		BandPreferences: map[string][]Band{
			"Class 11":        {BandMorning},
			"AI Tools":        {BandMorning, BandAfternoon},
			"Freelancing":     {BandAfternoon, BandEvening},
			"Certifications":  {BandAfternoon},
			"Career Planning": {BandEvening},
		},
		Catalog: map[Band][]Slot{
			BandMorning:   hourlySlots(6, 11),
			BandAfternoon: hourlySlots(12, 16),
			BandEvening:   hourlySlots(17, 21),
		},
	}
}

// hourlySlots builds one 50-minute slot per hour from first to last inclusive.
func hourlySlots(first, last int) []Slot {
	slots := make([]Slot, 0, last-first+1)
	for h := first; h <= last; h++ {
		slots = append(slots, Slot{
			Start: util.TimeOfDay{Hour: h},
			End:   util.TimeOfDay{Hour: h, Minute: 50},
		})
	}
	return slots
}

// quota returns the day budget for a category.
func (cfg PlannerConfig) quota(categoryName string) int {
	q := cfg.SlotsPerDay * cfg.Balance[categoryName] / 100
	if q < 1 {
		return 1
	}
	return q
}
