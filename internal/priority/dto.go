package priority

import (
	"time"

	"github.com/mentora-app/mentora-backend/internal/task"
)

type ScoredTask struct {
	task.TaskResponse
	Score        int    `json:"score"`
	CategoryName string `json:"category_name"`
	GoalTitle    string `json:"goal_title"`
	GoalProgress int    `json:"goal_progress"`
}

func NewScoredTask(sc Scored, now time.Time) ScoredTask {
	return ScoredTask{
		TaskResponse: task.NewTaskResponse(&sc.Task, now),
		Score:        sc.Score,
		CategoryName: sc.CategoryName,
		GoalTitle:    sc.GoalTitle,
		GoalProgress: sc.GoalProgress,
	}
}
