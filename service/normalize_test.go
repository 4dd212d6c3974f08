package service

import (
	"testing"

	"timesheet/apperror"
	"timesheet/models"
)

func TestNormalizeDayOffEntries(t *testing.T) {
	for _, typ := range []models.EntryType{models.EntryTypeHoliday, models.EntryTypeLeave} {
		entry := &models.TimeEntry{EntryType: typ, Hours: 8, Description: "  "}
		if err := NormalizeEntry(entry); err != nil {
			t.Fatalf("%s: unexpected error %v", typ, err)
		}
		if entry.Hours != 0 {
			t.Fatalf("%s: expected 0 hours got %v", typ, entry.Hours)
		}
		if entry.Description != typ.DefaultDescription() {
			t.Fatalf("%s: expected default description got %q", typ, entry.Description)
		}
	}

	kept := &models.TimeEntry{EntryType: models.EntryTypeLeave, Hours: 4, Description: "Dentist"}
	if err := NormalizeEntry(kept); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if kept.Description != "Dentist" || kept.Hours != 0 {
		t.Fatalf("unexpected normalized entry %+v", kept)
	}
}

func TestNormalizeWorkHours(t *testing.T) {
	for _, hours := range []float64{0.5, 1, 7.5, 9} {
		entry := &models.TimeEntry{EntryType: models.EntryTypeWork, Hours: hours}
		if err := NormalizeEntry(entry); err != nil {
			t.Fatalf("hours %v rejected: %v", hours, err)
		}
	}
	for _, hours := range []float64{9.01, 10, 24, -1} {
		entry := &models.TimeEntry{EntryType: models.EntryTypeWork, Hours: hours}
		err := NormalizeEntry(entry)
		if !apperror.Is(err, apperror.KindValidation) {
			t.Fatalf("hours %v: expected validation error got %v", hours, err)
		}
	}
}

func TestNormalizeDefaultsAndUnknownType(t *testing.T) {
	entry := &models.TimeEntry{Hours: 8}
	if err := NormalizeEntry(entry); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if entry.EntryType != models.EntryTypeWork {
		t.Fatalf("empty type must default to work, got %q", entry.EntryType)
	}

	bad := &models.TimeEntry{EntryType: "vacation"}
	if err := NormalizeEntry(bad); !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-02-30"); !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for impossible date, got %v", err)
	}
	d, err := ParseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Format(models.DateLayout) != "2024-02-29" {
		t.Fatalf("unexpected date %s", d)
	}
}
