package service

import (
	"bytes"
	"context"

	"timesheet/apperror"
	"timesheet/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TimeEntryService struct {
	entries TimeEntryRepository
	users   UserRepository
}

func NewTimeEntryService(entries TimeEntryRepository, users UserRepository) *TimeEntryService {
	return &TimeEntryService{entries: entries, users: users}
}

type CreateEntryInput struct {
	Date        string
	Hours       float64
	Description string
	EntryType   string
}

// UpdateEntryInput is a patch: nil fields keep their stored value.
type UpdateEntryInput struct {
	ID          uuid.UUID
	Date        *string
	Hours       *float64
	Description *string
	EntryType   *string
}

func (s *TimeEntryService) Create(ctx context.Context, owner *models.User, input CreateEntryInput) (*models.TimeEntry, error) {
	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{
		UserID:      owner.ID,
		Date:        datatypes.Date(date),
		Hours:       input.Hours,
		Description: input.Description,
		EntryType:   models.EntryType(input.EntryType),
	}
	if err := NormalizeEntry(entry); err != nil {
		return nil, err
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	entry.User = *owner
	return entry, nil
}

// Update patches an entry owned by the caller. Entries of other users are
// reported as not found.
func (s *TimeEntryService) Update(ctx context.Context, owner *models.User, input UpdateEntryInput) (*models.TimeEntry, error) {
	entry, err := s.entries.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != owner.ID {
		return nil, apperror.NotFound("time entry not found")
	}

	if input.Date != nil {
		date, err := ParseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = datatypes.Date(date)
	}
	if input.Hours != nil {
		entry.Hours = *input.Hours
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.EntryType != nil {
		entry.EntryType = models.EntryType(*input.EntryType)
	}

	if err := NormalizeEntry(entry); err != nil {
		return nil, err
	}
	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an entry. Admins may delete any entry; everyone else only
// their own. The removed entry is returned.
func (s *TimeEntryService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) (*models.TimeEntry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil && !apperror.Is(err, apperror.KindNotFound) {
		return nil, err
	}
	if entry == nil || !actor.CanManageEntry(entry) {
		if actor.IsAdmin {
			return nil, apperror.NotFound("time entry not found")
		}
		return nil, apperror.NotFound("time entry not found or you are not authorized to delete it")
	}

	if err := s.entries.Delete(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListOwnMonth returns the caller's entries for a month, newest first.
func (s *TimeEntryService) ListOwnMonth(ctx context.Context, user *models.User, year, month int) ([]models.TimeEntry, error) {
	return s.listMonth(ctx, &user.ID, year, month, true)
}

// ListUserMonth returns any active user's entries for a month, oldest first.
func (s *TimeEntryService) ListUserMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]models.TimeEntry, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.listMonth(ctx, &userID, year, month, false)
}

func (s *TimeEntryService) listMonth(ctx context.Context, userID *uuid.UUID, year, month int, descending bool) ([]models.TimeEntry, error) {
	from, to, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	return s.entries.Find(ctx, models.TimeEntryFilter{
		UserID:     userID,
		From:       from,
		To:         to,
		Descending: descending,
	})
}

// MonthlyReport builds one row per active user, optionally limited to a project.
func (s *TimeEntryService) MonthlyReport(ctx context.Context, year, month int, projectID *uuid.UUID) ([]ReportRow, error) {
	users, entries, err := s.monthData(ctx, year, month, projectID)
	if err != nil {
		return nil, err
	}
	return BuildMonthlyReport(users, entries), nil
}

func (s *TimeEntryService) MonthlyStats(ctx context.Context, year, month int, projectID *uuid.UUID) (MonthlyStats, error) {
	rows, err := s.MonthlyReport(ctx, year, month, projectID)
	if err != nil {
		return MonthlyStats{}, err
	}
	return SummarizeReport(rows, year, month), nil
}

// ExportCSV renders the monthly report as a CSV document.
func (s *TimeEntryService) ExportCSV(ctx context.Context, year, month int, projectID *uuid.UUID) ([]byte, error) {
	users, entries, err := s.monthData(ctx, year, month, projectID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, users, entries); err != nil {
		return nil, apperror.Internal("render csv", err)
	}
	return buf.Bytes(), nil
}

func (s *TimeEntryService) monthData(ctx context.Context, year, month int, projectID *uuid.UUID) ([]models.User, []models.TimeEntry, error) {
	from, to, err := MonthRange(year, month)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.users.List(ctx, models.UserFilter{ProjectID: projectID, OrderBy: models.UserOrderEmail})
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.entries.Find(ctx, models.TimeEntryFilter{From: from, To: to})
	if err != nil {
		return nil, nil, err
	}
	return users, entries, nil
}
