package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestDisplayNameFallsBackToEmailLocalPart(t *testing.T) {
	u := User{Email: "jane.doe@example.com"}
	if got := u.DisplayName(); got != "jane.doe" {
		t.Fatalf("expected jane.doe got %q", got)
	}
	u.Name = "Jane Doe"
	if got := u.DisplayName(); got != "Jane Doe" {
		t.Fatalf("expected Jane Doe got %q", got)
	}
}

func TestNameSplit(t *testing.T) {
	u := User{Name: "Mary Ann van Dyke"}
	if first := u.FirstName(); first == nil || *first != "Mary" {
		t.Fatalf("unexpected first name %v", first)
	}
	if last := u.LastName(); last == nil || *last != "Ann van Dyke" {
		t.Fatalf("unexpected last name %v", last)
	}

	single := User{Name: "Cher"}
	if single.LastName() != nil {
		t.Fatalf("single word name must not have a last name")
	}
	if (&User{}).FirstName() != nil {
		t.Fatalf("empty name must not have a first name")
	}
}

func TestCanManageEntry(t *testing.T) {
	owner := User{ID: uuid.New()}
	other := User{ID: uuid.New()}
	admin := User{ID: uuid.New(), IsAdmin: true}
	entry := &TimeEntry{UserID: owner.ID}

	if !owner.CanManageEntry(entry) {
		t.Fatalf("owner must manage own entry")
	}
	if other.CanManageEntry(entry) {
		t.Fatalf("non-admin must not manage someone else's entry")
	}
	if !admin.CanManageEntry(entry) {
		t.Fatalf("admin must manage any entry")
	}
}

func TestEntryTypeDefaults(t *testing.T) {
	if EntryType("vacation").Valid() {
		t.Fatalf("unknown entry type reported valid")
	}
	if EntryTypeHoliday.DefaultDescription() != "Holiday" || EntryTypeLeave.DefaultDescription() != "Leave" {
		t.Fatalf("unexpected default descriptions")
	}
	if EntryTypeWork.IsDayOff() || !EntryTypeLeave.IsDayOff() {
		t.Fatalf("unexpected IsDayOff result")
	}
}
