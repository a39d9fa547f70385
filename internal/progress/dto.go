package progress

import "time"

// DailyMetrics are counted against a single calendar day: totals by task
// deadline, completions by completion timestamp, and slot time from that
// weekday's blueprint only.
type DailyMetrics struct {
	Date             string         `json:"date"`
	Total            int            `json:"total"`
	Completed        int            `json:"completed"`
	CompletionRate   float64        `json:"completion_rate"`
	CompletedToday   int            `json:"completed_today"`
	TimeSpentMinutes int            `json:"time_spent_minutes"`
	TimeByCategory   map[string]int `json:"time_by_category"`
	Overdue          int            `json:"overdue"`
}

type WeeklyMetrics struct {
	StartDate          string         `json:"start_date"`
	EndDate            string         `json:"end_date"`
	TotalTasks         int            `json:"total_tasks"`
	CompletedTasks     int            `json:"completed_tasks"`
	CompletionRate     float64        `json:"completion_rate"`
	TimeByCategory     map[string]int `json:"time_by_category"`
	MostProductiveDay  string         `json:"most_productive_day"`
	LeastProductiveDay string         `json:"least_productive_day"`
	Streak             int            `json:"streak"`
	Days               []DailyMetrics `json:"days"`
}

type OverallProgress struct {
	ActiveGoals        int64   `json:"active_goals"`
	GoalsCompleted30d  int64   `json:"goals_completed_30d"`
	TasksCompleted30d  int64   `json:"tasks_completed_30d"`
	TasksCompletedEver int64   `json:"tasks_completed_total"`
	OpenTasks          int64   `json:"open_tasks"`
	Streak             int     `json:"streak"`
	CompletionRate30d  float64 `json:"completion_rate_30d"`
}

type ActivityItem struct {
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
}
