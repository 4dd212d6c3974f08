package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"timesheet/models"
)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\uFEFF"

var csvHeader = []string{"Name", "Email", "Project", "Date", "Hours", "Description", "Entry Type"}

// WriteReportCSV writes one row per (user, entry) pair, users ordered by email
// and entries by date. Users are expected to carry their Project.
func WriteReportCSV(w io.Writer, users []models.User, entries []models.TimeEntry) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range BuildMonthlyReport(users, entries) {
		name := row.User.DisplayName()
		project := row.User.ProjectName()
		for _, entry := range row.Entries {
			err := writer.Write([]string{
				name,
				row.User.Email,
				project,
				entry.Day(),
				strconv.FormatFloat(entry.Hours, 'f', -1, 64),
				entry.Description,
				string(entry.EntryType),
			})
			if err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
