package badge

// Stats is the snapshot badge conditions are evaluated against.
type Stats struct {
	Streak           int  `json:"streak"`
	TotalCompleted   int  `json:"total_completed"`
	PerfectDay       bool `json:"perfect_day"`
	PerfectWeek      bool `json:"perfect_week"`
	CategoryMastered bool `json:"category_mastered"`
	EarlyBird        bool `json:"early_bird"`
	NightOwl         bool `json:"night_owl"`
	WeekendWarrior   bool `json:"weekend_warrior"`
}

// Badge is one catalog entry with its earning condition.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      func(Stats) bool `json:"-"`
}

// Catalog is the fixed badge list. Earned state lives in the database, not
// here.
var Catalog = []Badge{
	{
		ID: "streak_3", Name: "On a Roll", Icon: "🔥",
		Description: "Complete tasks three days in a row",
		Earned:      func(s Stats) bool { return s.Streak >= 3 },
	},
	{
		ID: "streak_5", Name: "Unstoppable", Icon: "⚡",
		Description: "Complete tasks five days in a row",
		Earned:      func(s Stats) bool { return s.Streak >= 5 },
	},
	{
		ID: "streak_7", Name: "Full Week", Icon: "🏆",
		Description: "Complete tasks seven days in a row",
		Earned:      func(s Stats) bool { return s.Streak >= 7 },
	},
	{
		ID: "tasks_10", Name: "Getting Started", Icon: "🌱",
		Description: "Complete ten tasks",
		Earned:      func(s Stats) bool { return s.TotalCompleted >= 10 },
	},
	{
		ID: "tasks_50", Name: "Task Machine", Icon: "⚙️",
		Description: "Complete fifty tasks",
		Earned:      func(s Stats) bool { return s.TotalCompleted >= 50 },
	},
	{
		ID: "tasks_100", Name: "Centurion", Icon: "💯",
		Description: "Complete one hundred tasks",
		Earned:      func(s Stats) bool { return s.TotalCompleted >= 100 },
	},
	{
		ID: "perfect_day", Name: "Perfect Day", Icon: "⭐",
		Description: "Finish every task due in a single day",
		Earned:      func(s Stats) bool { return s.PerfectDay },
	},
	{
		ID: "perfect_week", Name: "Perfect Week", Icon: "🌟",
		Description: "Finish every task due across a whole week",
		Earned:      func(s Stats) bool { return s.PerfectWeek },
	},
	{
		ID: "category_master", Name: "Category Master", Icon: "🎓",
		Description: "Complete every task in a category",
		Earned:      func(s Stats) bool { return s.CategoryMastered },
	},
	{
		ID: "early_bird", Name: "Early Bird", Icon: "🌅",
		Description: "Complete a task before 8 AM",
		Earned:      func(s Stats) bool { return s.EarlyBird },
	},
	{
		ID: "night_owl", Name: "Night Owl", Icon: "🦉",
		Description: "Complete a task after 10 PM",
		Earned:      func(s Stats) bool { return s.NightOwl },
	},
	{
		ID: "weekend_warrior", Name: "Weekend Warrior", Icon: "🛡️",
		Description: "Complete tasks on both Saturday and Sunday",
		Earned:      func(s Stats) bool { return s.WeekendWarrior },
	},
}

// Evaluate returns the catalog badges whose condition holds and that are not
// in the earned set yet. Pure over its inputs.
func Evaluate(stats Stats, earned map[string]bool) []Badge {
	var fresh []Badge
	for _, b := range Catalog {
		if earned[b.ID] {
			continue
		}
		if b.Earned(stats) {
			fresh = append(fresh, b)
		}
	}
	return fresh
}
