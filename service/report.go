package service

import (
	"sort"

	"timesheet/models"

	"github.com/google/uuid"
)

// ReportRow is one user's slice of a monthly report.
type ReportRow struct {
	User           models.User
	Entries        []models.TimeEntry
	WorkDaysCount  int
	TotalWorkHours float64
}

// BuildMonthlyReport groups entries by user. Every user gets a row, even with
// no entries; rows are ordered by email and entries by date.
func BuildMonthlyReport(users []models.User, entries []models.TimeEntry) []ReportRow {
	byUser := make(map[uuid.UUID][]models.TimeEntry, len(users))
	for _, entry := range entries {
		byUser[entry.UserID] = append(byUser[entry.UserID], entry)
	}

	sorted := make([]models.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Email < sorted[j].Email
	})

	rows := make([]ReportRow, 0, len(sorted))
	for _, user := range sorted {
		userEntries := byUser[user.ID]
		if userEntries == nil {
			userEntries = []models.TimeEntry{}
		}
		sort.SliceStable(userEntries, func(i, j int) bool {
			return userEntries[i].Day() < userEntries[j].Day()
		})

		row := ReportRow{User: user, Entries: userEntries}
		workDays := make(map[string]struct{})
		for _, entry := range userEntries {
			if entry.EntryType != models.EntryTypeWork {
				continue
			}
			workDays[entry.Day()] = struct{}{}
			row.TotalWorkHours += entry.Hours
		}
		row.WorkDaysCount = len(workDays)
		rows = append(rows, row)
	}
	return rows
}

type MonthlyStats struct {
	TotalUsers               int
	WorkingDaysInMonth       int
	UsersWithMissingEntries  int
	UsersWithCompleteEntries int
}

// SummarizeReport counts users whose distinct work days cover every weekday of the month.
func SummarizeReport(rows []ReportRow, year, month int) MonthlyStats {
	stats := MonthlyStats{
		TotalUsers:         len(rows),
		WorkingDaysInMonth: WorkingDaysInMonth(year, month),
	}
	for _, row := range rows {
		if row.WorkDaysCount < stats.WorkingDaysInMonth {
			stats.UsersWithMissingEntries++
		} else {
			stats.UsersWithCompleteEntries++
		}
	}
	return stats
}
