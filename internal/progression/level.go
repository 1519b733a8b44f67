package progression

// XPThreshold returns the XP required to advance from level to level+1
func XPThreshold(level int) int64 {
	return BaseThreshold + int64(level)*ThresholdStep
}

// Resolve folds an XP delta into (xp, level), crossing as many thresholds as
// the delta covers. The returned xp always satisfies 0 <= xp < XPThreshold(level).
//
// A negative delta never lowers the level; xp bottoms out at zero.
func Resolve(xp int64, level int, delta int64) (newXP int64, newLevel int, leveledUp bool) {
	if level < MinLevel {
		level = MinLevel
	}

	newXP = xp + delta
	newLevel = level
	if newXP < 0 {
		newXP = 0
	}

	for newXP >= XPThreshold(newLevel) {
		newXP -= XPThreshold(newLevel)
		newLevel++
	}

	return newXP, newLevel, newLevel > level
}

// StreakBonus is the extra XP for finishing every daily task: 25% of the current threshold
func StreakBonus(level int) int64 {
	return XPThreshold(level) / StreakBonusDivisor
}

// ProgressPercent returns how far xp is towards the next level, in [0, 100)
func ProgressPercent(xp int64, level int) float64 {
	threshold := XPThreshold(level)
	if threshold <= 0 {
		return 0
	}
	return float64(xp) / float64(threshold) * 100
}

// LevelTitle returns the rank name shown next to a level
func LevelTitle(level int) string {
	switch {
	case level <= noviceMaxLevel:
		return TitleNoviceHunter
	case level <= networkingMaxLevel:
		return TitleNetworkingNinja
	case level <= careerProMaxLevel:
		return TitleCareerPro
	default:
		return TitleDubaiTycoon
	}
}
