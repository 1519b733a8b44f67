package domain

import "time"

// DefaultDisplayName is the profile name before the user sets one
const DefaultDisplayName = "Hunter"

// Progression is the experience, level and streak aggregate
type Progression struct {
	XP             int64      `json:"xp"`
	Level          int        `json:"level"`
	Streak         int        `json:"streak"`
	LastStreakDate *time.Time `json:"last_streak_date"`
}

// Profile holds the user's personal settings
type Profile struct {
	DisplayName    string     `json:"display_name"`
	VisaExpiryDate *time.Time `json:"visa_expiry_date"`
}

// State is the complete tracker aggregate
type State struct {
	Progression
	Profile

	Jobs                    []Job         `json:"jobs"`
	DailyTasks              []DailyTask   `json:"daily_tasks"`
	Contacts                []Contact     `json:"contacts"`
	Achievements            []Achievement `json:"achievements"`
	LastUnlockedAchievement *Achievement  `json:"last_unlocked_achievement"`

	// LevelUpPending is a transient UI flag and is never persisted
	LevelUpPending bool `json:"level_up_pending"`
}

// DefaultState returns the initial aggregate with the given task catalog
func DefaultState(tasks []DailyTask) State {
	fresh := make([]DailyTask, len(tasks))
	for i, t := range tasks {
		t.IsCompleted = false
		fresh[i] = t
	}
	return State{
		Progression:  Progression{XP: 0, Level: 1},
		Profile:      Profile{DisplayName: DefaultDisplayName},
		Jobs:         []Job{},
		DailyTasks:   fresh,
		Contacts:     []Contact{},
		Achievements: DefaultAchievements(),
	}
}

// Clone returns a deep copy safe to hand to callers
func (s State) Clone() State {
	out := s
	out.LastStreakDate = cloneTime(s.LastStreakDate)
	out.VisaExpiryDate = cloneTime(s.VisaExpiryDate)

	out.Jobs = append([]Job{}, s.Jobs...)
	out.DailyTasks = append([]DailyTask{}, s.DailyTasks...)
	out.Achievements = append([]Achievement{}, s.Achievements...)

	out.Contacts = make([]Contact, len(s.Contacts))
	for i, c := range s.Contacts {
		c.NextFollowUpAt = cloneTime(c.NextFollowUpAt)
		out.Contacts[i] = c
	}

	if s.LastUnlockedAchievement != nil {
		a := *s.LastUnlockedAchievement
		out.LastUnlockedAchievement = &a
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Outcome describes what a single tracker operation did
type Outcome struct {
	// Changed is false when the operation was a no-op (unknown id, already completed task)
	Changed   bool          `json:"changed"`
	XPGained  int64         `json:"xp_gained"`
	OldLevel  int           `json:"old_level"`
	NewLevel  int           `json:"new_level"`
	LeveledUp bool          `json:"leveled_up"`
	Streak    *StreakUpdate `json:"streak,omitempty"`
	Unlocked  []Achievement `json:"unlocked,omitempty"`
	// EntityID is the id of the created or touched entity, when there is one
	EntityID string `json:"entity_id,omitempty"`

	// State is a copy of the state as this operation left it
	State *State `json:"-"`
}

// StreakUpdate is reported when completing the last open task advanced the streak
type StreakUpdate struct {
	Previous int   `json:"previous"`
	Current  int   `json:"current"`
	BonusXP  int64 `json:"bonus_xp"`
	Reset    bool  `json:"reset"`
}
