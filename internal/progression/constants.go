package progression

// XP formula constants
const (
	// BaseThreshold is the XP needed to leave level 0; XP for level N = BaseThreshold + N * ThresholdStep
	BaseThreshold = 300

	// ThresholdStep is how much each level raises the next threshold
	ThresholdStep = 50

	// StreakBonusDivisor turns the current threshold into the all-tasks bonus (25%)
	StreakBonusDivisor = 4

	// MinLevel is the starting level
	MinLevel = 1
)

// XP award amounts for tracker actions
const (
	XPJobAdded           = 150
	XPJobInterview       = 300
	XPJobOffer           = 1000
	XPContactAdded       = 50
	XPContactInteraction = 50
)

// Streak rules
const (
	// ConsecutiveGapDays is the largest day gap that still counts as consecutive
	ConsecutiveGapDays = 1

	// WeekendGapDays is the largest gap accepted when today is Monday (Friday -> Monday)
	WeekendGapDays = 3

	// StreakMasterThreshold is the streak needed for the streak-master achievement
	StreakMasterThreshold = 3

	// NetworkerThreshold is the contact count needed for the networker achievement
	NetworkerThreshold = 5
)

// Level title bands
const (
	TitleNoviceHunter    = "Novice Hunter"
	TitleNetworkingNinja = "Networking Ninja"
	TitleCareerPro       = "Career Pro"
	TitleDubaiTycoon     = "Dubai Tycoon"

	noviceMaxLevel     = 5
	networkingMaxLevel = 10
	careerProMaxLevel  = 20
)
