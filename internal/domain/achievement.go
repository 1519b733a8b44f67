package domain

// Achievement IDs
const (
	AchievementFirstBlood     = "first-blood"
	AchievementNetworker      = "networker"
	AchievementStreakMaster   = "streak-master"
	AchievementInterviewReady = "interview-ready"
)

// Achievement is a one-way unlockable badge
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// DefaultAchievements returns the achievement table, all locked, in evaluation order
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchievementFirstBlood, Title: "First Blood", Description: "Apply to your first job", Icon: "⚔️"},
		{ID: AchievementNetworker, Title: "Social Butterfly", Description: "Add 5 contacts", Icon: "🦋"},
		{ID: AchievementStreakMaster, Title: "Consistent", Description: "Reach a 3-day streak", Icon: "🔥"},
		{ID: AchievementInterviewReady, Title: "Showtime", Description: "Land an interview", Icon: "🎤"},
	}
}
