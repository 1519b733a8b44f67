package progression

import "time"

// StreakPolicy decides whether a completion gapDays after the previous one,
// landing on weekday today, keeps the streak alive
type StreakPolicy func(gapDays int, today time.Weekday) bool

// WeekendExemptPolicy accepts consecutive days, and a Friday -> Monday
// jump when today is Monday
func WeekendExemptPolicy(gapDays int, today time.Weekday) bool {
	if gapDays <= ConsecutiveGapDays {
		return true
	}
	return today == time.Monday && gapDays <= WeekendGapDays
}

// GapDays returns the absolute number of calendar days between last and
// today, both read in today's location. Time of day is ignored, so this is
// not ceil(elapsed / 24h): Friday 08:00 to Monday 23:00 is 3, not 4.
func GapDays(last, today time.Time) int {
	last = last.In(today.Location())
	ly, lm, ld := last.Date()
	ty, tm, td := today.Date()

	// Compare as UTC midnights so DST transitions cannot produce 23h or 25h days
	from := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	to := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// NextStreak computes the streak after all daily tasks were completed at today.
// reset is true when an existing streak was broken and restarted at 1.
func NextStreak(current int, last *time.Time, today time.Time, policy StreakPolicy) (streak int, reset bool) {
	if last == nil {
		return 1, false
	}
	if policy == nil {
		policy = WeekendExemptPolicy
	}

	if policy(GapDays(*last, today), today.Weekday()) {
		return current + 1, false
	}
	return 1, current > 0
}
