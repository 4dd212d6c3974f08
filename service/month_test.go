package service

import (
	"testing"

	"timesheet/apperror"
	"timesheet/models"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		year, month int
		first, last string
	}{
		{2024, 1, "2024-01-01", "2024-01-31"},
		{2024, 2, "2024-02-01", "2024-02-29"},
		{2023, 2, "2023-02-01", "2023-02-28"},
		{2024, 4, "2024-04-01", "2024-04-30"},
		{2024, 12, "2024-12-01", "2024-12-31"},
	}
	for _, tc := range cases {
		first, last, err := MonthRange(tc.year, tc.month)
		if err != nil {
			t.Fatalf("%d-%d: %v", tc.year, tc.month, err)
		}
		if got := first.Format(models.DateLayout); got != tc.first {
			t.Fatalf("%d-%d: first day %s, want %s", tc.year, tc.month, got, tc.first)
		}
		if got := last.Format(models.DateLayout); got != tc.last {
			t.Fatalf("%d-%d: last day %s, want %s", tc.year, tc.month, got, tc.last)
		}
	}
}

func TestMonthRangeIsOneBased(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, _, err := MonthRange(2024, month); !apperror.Is(err, apperror.KindValidation) {
			t.Fatalf("month %d: expected validation error got %v", month, err)
		}
	}
	if _, _, err := MonthRange(0, 5); !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("year 0: expected validation error got %v", err)
	}
}

func TestWorkingDaysInMonth(t *testing.T) {
	// February 2024 starts on a Thursday: 21 weekdays.
	if got := WorkingDaysInMonth(2024, 2); got != 21 {
		t.Fatalf("expected 21 got %d", got)
	}
	// June 2024 starts on a Saturday: 20 weekdays.
	if got := WorkingDaysInMonth(2024, 6); got != 20 {
		t.Fatalf("expected 20 got %d", got)
	}
	if got := WorkingDaysInMonth(2024, 13); got != 0 {
		t.Fatalf("invalid month must yield 0 got %d", got)
	}
}
