package domain

// DailyTask is a repeatable daily goal that awards XP when completed
type DailyTask struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	XPReward    int64  `json:"xp_reward" yaml:"xp_reward"`
	IsCompleted bool   `json:"is_completed" yaml:"-"`
}

// DefaultDailyTasks returns a fresh copy of the built-in task list
func DefaultDailyTasks() []DailyTask {
	return []DailyTask{
		{ID: "1", Title: "Apply to 5 jobs", XPReward: 250},
		{ID: "2", Title: "Update resume", XPReward: 150},
		{ID: "3", Title: "Network with 3 people", XPReward: 300},
	}
}

// AllTasksCompleted reports whether every task is done.
// An empty list never counts as completed.
func AllTasksCompleted(tasks []DailyTask) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !t.IsCompleted {
			return false
		}
	}
	return true
}
