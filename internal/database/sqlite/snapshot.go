package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/repository"
)

// SnapshotRepository stores the tracker aggregate in SQLite through gorm
type SnapshotRepository struct {
	db *gorm.DB
}

var _ repository.Snapshot = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a snapshot repository on an already migrated database
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load reads the last saved snapshot
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.State, error) {
	db := r.db.WithContext(ctx)

	var prog progressionRow
	if err := db.First(&prog, singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("%w: load progression: %w", domain.ErrDatabaseError, err)
	}

	var state domain.State
	if err := fromProgressionRow(prog, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	var jobs []jobRow
	if err := db.Order("sort_order").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("%w: load jobs: %w", domain.ErrDatabaseError, err)
	}
	var tasks []taskRow
	if err := db.Order("sort_order").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("%w: load daily tasks: %w", domain.ErrDatabaseError, err)
	}
	var contacts []contactRow
	if err := db.Order("sort_order").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("%w: load contacts: %w", domain.ErrDatabaseError, err)
	}
	var achievements []achievementRow
	if err := db.Order("sort_order").Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("%w: load achievements: %w", domain.ErrDatabaseError, err)
	}

	state.Jobs = fromJobRows(jobs)
	state.DailyTasks = fromTaskRows(tasks)
	state.Contacts = fromContactRows(contacts)
	state.Achievements = fromAchievementRows(achievements)
	return &state, nil
}

// Save replaces the stored snapshot with state in one transaction
func (r *SnapshotRepository) Save(ctx context.Context, state domain.State) error {
	prog, err := toProgressionRow(state)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&prog).Error; err != nil {
			return fmt.Errorf("save progression: %w", err)
		}
		if err := replaceAll(tx, toJobRows(state.Jobs)); err != nil {
			return fmt.Errorf("save jobs: %w", err)
		}
		if err := replaceAll(tx, toTaskRows(state.DailyTasks)); err != nil {
			return fmt.Errorf("save daily tasks: %w", err)
		}
		if err := replaceAll(tx, toContactRows(state.Contacts)); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}
		if err := replaceAll(tx, toAchievementRows(state.Achievements)); err != nil {
			return fmt.Errorf("save achievements: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

// Clear removes the stored snapshot; a later Load reports domain.ErrSnapshotNotFound
func (r *SnapshotRepository) Clear(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&progressionRow{}, &jobRow{}, &taskRow{}, &contactRow{}, &achievementRow{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: clear snapshot: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

// replaceAll swaps the contents of a table for rows
func replaceAll[T any](tx *gorm.DB, rows []T) error {
	var model T
	if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
