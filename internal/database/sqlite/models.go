package sqlite

import (
	"time"

	"gorm.io/datatypes"
)

// singletonID is the primary key of the one progression row
const singletonID = 1

type progressionRow struct {
	ID                      int             `gorm:"column:id;primaryKey"`
	XP                      int64           `gorm:"column:xp"`
	Level                   int             `gorm:"column:level"`
	Streak                  int             `gorm:"column:streak"`
	LastStreakDate          *time.Time      `gorm:"column:last_streak_date"`
	DisplayName             string          `gorm:"column:display_name"`
	VisaExpiryDate          *datatypes.Date `gorm:"column:visa_expiry_date"`
	LastUnlockedAchievement datatypes.JSON  `gorm:"column:last_unlocked_achievement"`
	UpdatedAt               time.Time       `gorm:"column:updated_at"`
}

func (progressionRow) TableName() string { return "progression" }

type jobRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	SortOrder int       `gorm:"column:sort_order"`
	Company   string    `gorm:"column:company"`
	Position  string    `gorm:"column:position"`
	Status    string    `gorm:"column:status"`
	Notes     string    `gorm:"column:notes"`
	Link      string    `gorm:"column:link"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (jobRow) TableName() string { return "jobs" }

type taskRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	SortOrder   int    `gorm:"column:sort_order"`
	Title       string `gorm:"column:title"`
	XPReward    int64  `gorm:"column:xp_reward"`
	IsCompleted bool   `gorm:"column:is_completed"`
}

func (taskRow) TableName() string { return "daily_tasks" }

type contactRow struct {
	ID              string     `gorm:"column:id;primaryKey"`
	SortOrder       int        `gorm:"column:sort_order"`
	Name            string     `gorm:"column:name"`
	Company         string     `gorm:"column:company"`
	Role            string     `gorm:"column:role"`
	Status          string     `gorm:"column:status"`
	Type            string     `gorm:"column:type"`
	LastContactedAt time.Time  `gorm:"column:last_contacted_at"`
	NextFollowUpAt  *time.Time `gorm:"column:next_follow_up_at"`
	Notes           string     `gorm:"column:notes"`
	Link            string     `gorm:"column:link"`
}

func (contactRow) TableName() string { return "contacts" }

type achievementRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	SortOrder   int    `gorm:"column:sort_order"`
	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	Icon        string `gorm:"column:icon"`
	Unlocked    bool   `gorm:"column:unlocked"`
}

func (achievementRow) TableName() string { return "achievements" }
