package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

func toProgressionRow(s domain.State) (progressionRow, error) {
	row := progressionRow{
		ID:             singletonID,
		XP:             s.XP,
		Level:          s.Level,
		Streak:         s.Streak,
		LastStreakDate: s.LastStreakDate,
		DisplayName:    s.DisplayName,
	}
	if s.VisaExpiryDate != nil {
		d := datatypes.Date(*s.VisaExpiryDate)
		row.VisaExpiryDate = &d
	}
	if s.LastUnlockedAchievement != nil {
		raw, err := json.Marshal(s.LastUnlockedAchievement)
		if err != nil {
			return row, fmt.Errorf("encode last unlocked achievement: %w", err)
		}
		row.LastUnlockedAchievement = datatypes.JSON(raw)
	}
	return row, nil
}

func fromProgressionRow(row progressionRow, s *domain.State) error {
	s.XP = row.XP
	s.Level = row.Level
	s.Streak = row.Streak
	s.LastStreakDate = row.LastStreakDate
	s.DisplayName = row.DisplayName
	if row.VisaExpiryDate != nil {
		t := time.Time(*row.VisaExpiryDate)
		s.VisaExpiryDate = &t
	}
	if len(row.LastUnlockedAchievement) > 0 {
		var a domain.Achievement
		if err := json.Unmarshal(row.LastUnlockedAchievement, &a); err != nil {
			return fmt.Errorf("decode last unlocked achievement: %w", err)
		}
		s.LastUnlockedAchievement = &a
	}
	return nil
}

func toJobRows(jobs []domain.Job) []jobRow {
	rows := make([]jobRow, len(jobs))
	for i, j := range jobs {
		rows[i] = jobRow{
			ID:        j.ID,
			SortOrder: i,
			Company:   j.Company,
			Position:  j.Position,
			Status:    string(j.Status),
			Notes:     j.Notes,
			Link:      j.Link,
			CreatedAt: j.CreatedAt,
		}
	}
	return rows
}

func fromJobRows(rows []jobRow) []domain.Job {
	jobs := make([]domain.Job, len(rows))
	for i, r := range rows {
		jobs[i] = domain.Job{
			ID:        r.ID,
			Company:   r.Company,
			Position:  r.Position,
			Status:    domain.JobStatus(r.Status),
			CreatedAt: r.CreatedAt,
			Notes:     r.Notes,
			Link:      r.Link,
		}
	}
	return jobs
}

func toTaskRows(tasks []domain.DailyTask) []taskRow {
	rows := make([]taskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = taskRow{ID: t.ID, SortOrder: i, Title: t.Title, XPReward: t.XPReward, IsCompleted: t.IsCompleted}
	}
	return rows
}

func fromTaskRows(rows []taskRow) []domain.DailyTask {
	tasks := make([]domain.DailyTask, len(rows))
	for i, r := range rows {
		tasks[i] = domain.DailyTask{ID: r.ID, Title: r.Title, XPReward: r.XPReward, IsCompleted: r.IsCompleted}
	}
	return tasks
}

func toContactRows(contacts []domain.Contact) []contactRow {
	rows := make([]contactRow, len(contacts))
	for i, c := range contacts {
		rows[i] = contactRow{
			ID:              c.ID,
			SortOrder:       i,
			Name:            c.Name,
			Company:         c.Company,
			Role:            c.Role,
			Status:          string(c.Status),
			Type:            string(c.Type),
			LastContactedAt: c.LastContactedAt,
			NextFollowUpAt:  c.NextFollowUpAt,
			Notes:           c.Notes,
			Link:            c.Link,
		}
	}
	return rows
}

func fromContactRows(rows []contactRow) []domain.Contact {
	contacts := make([]domain.Contact, len(rows))
	for i, r := range rows {
		contacts[i] = domain.Contact{
			ID:              r.ID,
			Name:            r.Name,
			Company:         r.Company,
			Role:            r.Role,
			Status:          domain.ContactStatus(r.Status),
			Type:            domain.ContactType(r.Type),
			LastContactedAt: r.LastContactedAt,
			NextFollowUpAt:  r.NextFollowUpAt,
			Notes:           r.Notes,
			Link:            r.Link,
		}
	}
	return contacts
}

func toAchievementRows(achievements []domain.Achievement) []achievementRow {
	rows := make([]achievementRow, len(achievements))
	for i, a := range achievements {
		rows[i] = achievementRow{
			ID:          a.ID,
			SortOrder:   i,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Unlocked:    a.Unlocked,
		}
	}
	return rows
}

func fromAchievementRows(rows []achievementRow) []domain.Achievement {
	achievements := make([]domain.Achievement, len(rows))
	for i, r := range rows {
		achievements[i] = domain.Achievement{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Icon:        r.Icon,
			Unlocked:    r.Unlocked,
		}
	}
	return achievements
}
