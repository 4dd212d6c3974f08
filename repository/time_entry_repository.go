package repository

import (
	"context"
	"errors"
	"fmt"

	"timesheet/apperror"
	"timesheet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Find returns entries whose date lies in [filter.From, filter.To], both inclusive.
func (r *TimeEntryRepository) Find(ctx context.Context, filter models.TimeEntryFilter) ([]models.TimeEntry, error) {
	query := r.db.WithContext(ctx).Preload("User").
		Where("time_entries.date BETWEEN ? AND ?", filter.From.Format(models.DateLayout), filter.To.Format(models.DateLayout))

	if filter.UserID != nil {
		query = query.Where("time_entries.user_id = ?", *filter.UserID)
	}

	if filter.Descending {
		query = query.Order("time_entries.date desc").Order("time_entries.created_at desc")
	} else {
		query = query.Order("time_entries.date asc").Order("time_entries.created_at asc")
	}

	var entries []models.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("find time entries: %w", err)
	}
	return entries, nil
}

func (r *TimeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).Preload("User").First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("time entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find time entry: %w", err)
	}
	return &entry, nil
}

func (r *TimeEntryRepository) Create(ctx context.Context, entry *models.TimeEntry) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		return fmt.Errorf("create time entry: %w", err)
	}
	return nil
}

// Save overwrites the row; concurrent updates of the same entry are last-write-wins.
func (r *TimeEntryRepository) Save(ctx context.Context, entry *models.TimeEntry) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error; err != nil {
		return fmt.Errorf("save time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, entry *models.TimeEntry) error {
	if err := r.db.WithContext(ctx).Delete(&models.TimeEntry{}, "id = ?", entry.ID).Error; err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}
