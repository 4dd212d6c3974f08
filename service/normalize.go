package service

import (
	"strings"
	"time"

	"timesheet/apperror"
	"timesheet/models"
)

// MaxWorkHours is the most a single work entry may record.
const MaxWorkHours = 9

// NormalizeEntry validates an entry in place before it is persisted.
// Day-off entries are forced to zero hours and get a default description.
func NormalizeEntry(entry *models.TimeEntry) error {
	if entry.EntryType == "" {
		entry.EntryType = models.EntryTypeWork
	}
	if !entry.EntryType.Valid() {
		return apperror.Validation("invalid entry type %q", entry.EntryType)
	}

	if entry.EntryType.IsDayOff() {
		entry.Hours = 0
		if strings.TrimSpace(entry.Description) == "" {
			entry.Description = entry.EntryType.DefaultDescription()
		}
		return nil
	}

	if entry.Hours > MaxWorkHours {
		return apperror.Validation("hours cannot exceed %d per day", MaxWorkHours)
	}
	if entry.Hours < 0 {
		return apperror.Validation("hours cannot be negative")
	}
	return nil
}

func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperror.Validation("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
