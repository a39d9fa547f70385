package priority

import (
	"sort"
	"time"

	"github.com/mentora-app/mentora-backend/internal/task"
	util "github.com/mentora-app/mentora-backend/internal/utils"
)

// CompletedScore pins finished tasks to the end of any ranking.
const CompletedScore = 1000

// Weights maps a category name to its importance weight. Categories absent
// from the table weigh zero.
type Weights map[string]int

// CategoryWeights is the fixed importance table. Kept as a named value so
// tests can substitute their own.
var CategoryWeights = Weights{
	"Certifications":  40,
	"Career Planning": 35,
	"Freelancing":     30,
	"AI Tools":        25,
	"Study":           20,
}

// Input bundles a task with the cross-entity facts scoring needs.
type Input struct {
	Task         task.Task
	CategoryName string
	GoalTitle    string
	GoalProgress int
	Dependents   int
}

// Scored pairs an input with its computed score.
type Scored struct {
	Input
	Score int
}

// Score computes the urgency score for a single task. Lower means more
// urgent. Completed tasks always score CompletedScore.
func Score(weights Weights, in Input, now time.Time) int {
	if in.Task.Completed {
		return CompletedScore
	}

	base := int(in.Task.Priority) * 100
	score := base
	score -= deadlineTerm(in.Task.Deadline, now)
	score -= goalTerm(weights, in.CategoryName, in.GoalProgress)
	score -= in.Dependents * 20
	return score
}

// deadlineTerm grows as the deadline approaches. Days are counted between
// calendar dates, not 24-hour spans.
func deadlineTerm(deadline *time.Time, now time.Time) int {
	if deadline == nil {
		return 0
	}

	days := int(util.DayStart(*deadline).Sub(util.DayStart(now)).Hours() / 24)
	switch {
	case days < 0:
		return 200
	case days == 0:
		return 150
	case days <= 2:
		return 100
	case days <= 7:
		return 50
	default:
		term := 30 - (days/7)*5
		if term < 0 {
			return 0
		}
		return term
	}
}

func goalTerm(weights Weights, category string, progress int) int {
	term := weights[category]
	switch {
	case progress >= 75:
		term += 30
	case progress >= 50:
		term += 15
	}
	return term
}

// Rank scores every input and returns them sorted ascending. The sort is
// stable, so ties keep the input order.
func Rank(weights Weights, inputs []Input, now time.Time) []Scored {
	scored := make([]Scored, len(inputs))
	for i, in := range inputs {
		scored[i] = Scored{Input: in, Score: Score(weights, in, now)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	return scored
}
