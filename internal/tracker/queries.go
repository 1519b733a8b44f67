package tracker

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/progression"
)

// Snapshot returns a deep copy of the full state
func (s *service) Snapshot(ctx context.Context) domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dashboard derives the home-screen summary from the current state
func (s *service) Dashboard(ctx context.Context) domain.Dashboard {
	now := s.clock()

	s.mu.RLock()
	defer s.mu.RUnlock()
	st := &s.state

	d := domain.Dashboard{
		DisplayName:       st.DisplayName,
		Level:             st.Level,
		LevelTitle:        progression.LevelTitle(st.Level),
		XP:                st.XP,
		XPForNextLevel:    progression.XPThreshold(st.Level),
		ProgressPercent:   progression.ProgressPercent(st.XP, st.Level),
		Streak:            st.Streak,
		TotalJobs:         len(st.Jobs),
		JobsByStatus:      make(map[domain.JobStatus]int, len(domain.JobStatuses)),
		TotalTasks:        len(st.DailyTasks),
		TotalAchievements: len(st.Achievements),
	}

	for _, status := range domain.JobStatuses {
		d.JobsByStatus[status] = 0
	}
	for _, j := range st.Jobs {
		d.JobsByStatus[j.Status]++
		if j.Status.IsActive() {
			d.ActiveJobs++
		}
	}
	for _, t := range st.DailyTasks {
		if t.IsCompleted {
			d.CompletedTasks++
		}
	}
	for _, a := range st.Achievements {
		if a.Unlocked {
			d.UnlockedCount++
		}
	}
	d.FollowUpsDue = len(dueContacts(st.Contacts, now))

	if st.VisaExpiryDate != nil {
		days := VisaDaysRemaining(*st.VisaExpiryDate, now)
		d.VisaDaysRemaining = &days
		d.VisaUrgency = VisaUrgencyFor(days)
	}
	return d
}

// VisaDaysRemaining is ceil((expiry - now) / 1 day); negative once expired
func VisaDaysRemaining(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// VisaUrgencyFor buckets remaining days: ok above 60, warning above 30, else critical
func VisaUrgencyFor(days int) domain.VisaUrgency {
	switch {
	case days > VisaOKAboveDays:
		return domain.VisaUrgencyOK
	case days > VisaWarningAboveDays:
		return domain.VisaUrgencyWarning
	default:
		return domain.VisaUrgencyCritical
	}
}

// SearchJobs returns the jobs whose company or position contains query,
// ignoring case. An empty query returns every job.
func (s *service) SearchJobs(ctx context.Context, query string) []domain.Job {
	folded := cases.Fold().String(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if jobs, ok := s.searchCache.Get(s.revision, folded); ok {
		return jobs
	}

	matches := make([]domain.Job, 0, len(s.state.Jobs))
	for _, j := range s.state.Jobs {
		if folded == "" || matchesJob(j, folded) {
			matches = append(matches, j)
		}
	}
	s.searchCache.Set(s.revision, folded, matches)
	return matches
}

// matchesJob folds per call; a cases.Caser carries state and is not safe to share
func matchesJob(j domain.Job, folded string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(j.Company), folded) ||
		strings.Contains(fold.String(j.Position), folded)
}

// JobBoard groups jobs into one column per status, in pipeline order.
// Unknown statuses from old snapshots are dropped from the board.
func (s *service) JobBoard(ctx context.Context) []domain.JobColumn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	columns := make([]domain.JobColumn, len(domain.JobStatuses))
	index := make(map[domain.JobStatus]int, len(domain.JobStatuses))
	for i, status := range domain.JobStatuses {
		columns[i] = domain.JobColumn{Status: status, Jobs: []domain.Job{}}
		index[status] = i
	}
	for _, j := range s.state.Jobs {
		if i, ok := index[j.Status]; ok {
			columns[i].Jobs = append(columns[i].Jobs, j)
		}
	}
	return columns
}

// FollowUpsDue lists contacts whose follow-up time has arrived, earliest first
func (s *service) FollowUpsDue(ctx context.Context) []domain.Contact {
	now := s.clock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	due := dueContacts(s.state.Contacts, now)
	out := make([]domain.Contact, len(due))
	for i, c := range due {
		t := *c.NextFollowUpAt
		c.NextFollowUpAt = &t
		out[i] = c
	}
	return out
}

func dueContacts(contacts []domain.Contact, now time.Time) []domain.Contact {
	var due []domain.Contact
	for _, c := range contacts {
		if c.NextFollowUpAt != nil && !c.NextFollowUpAt.After(now) {
			due = append(due, c)
		}
	}
	slices.SortStableFunc(due, func(a, b domain.Contact) int {
		return a.NextFollowUpAt.Compare(*b.NextFollowUpAt)
	})
	return due
}
