package progression

import "github.com/osse101/JobHunter_Go/internal/domain"

// predicate reports whether an achievement's condition holds for a state
type predicate func(s *domain.State) bool

// achievementRule pairs an achievement id with its unlock condition
type achievementRule struct {
	id    string
	check predicate
}

// rules is evaluated in table order
var rules = []achievementRule{
	{id: domain.AchievementFirstBlood, check: func(s *domain.State) bool {
		return len(s.Jobs) > 0
	}},
	{id: domain.AchievementNetworker, check: func(s *domain.State) bool {
		return len(s.Contacts) >= NetworkerThreshold
	}},
	{id: domain.AchievementStreakMaster, check: func(s *domain.State) bool {
		return s.Streak >= StreakMasterThreshold
	}},
	{id: domain.AchievementInterviewReady, check: func(s *domain.State) bool {
		for _, j := range s.Jobs {
			if j.Status == domain.JobStatusInterview {
				return true
			}
		}
		return false
	}},
}

// Evaluate unlocks every locked achievement whose condition now holds.
// It updates s.Achievements in place and returns the newly unlocked ones in
// table order. Unlocked achievements are never locked again.
func Evaluate(s *domain.State) []domain.Achievement {
	var unlocked []domain.Achievement

	for _, rule := range rules {
		idx := indexOf(s.Achievements, rule.id)
		if idx == -1 || s.Achievements[idx].Unlocked {
			continue
		}
		if rule.check(s) {
			s.Achievements[idx].Unlocked = true
			unlocked = append(unlocked, s.Achievements[idx])
		}
	}

	return unlocked
}

func indexOf(achievements []domain.Achievement, id string) int {
	for i, a := range achievements {
		if a.ID == id {
			return i
		}
	}
	return -1
}
