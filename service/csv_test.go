package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project, err := env.projects.Create(ctx, "Apollo")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	alice := env.createUser(t, CreateUserInput{Email: "alice@example.com", Name: "Alice Smith", ProjectID: &project.ID})
	bob := env.createUser(t, CreateUserInput{Email: "bob@example.com"})
	env.createUser(t, CreateUserInput{Email: "carol@example.com", Name: "Carol"})

	env.createEntry(t, alice, CreateEntryInput{Date: "2024-02-02", Hours: 8, Description: "Design, review"})
	env.createEntry(t, alice, CreateEntryInput{Date: "2024-02-01", Hours: 7.5, Description: `Said "hi"`})
	env.createEntry(t, bob, CreateEntryInput{Date: "2024-02-05", EntryType: "holiday"})
	env.createEntry(t, bob, CreateEntryInput{Date: "2024-03-01", Hours: 8})

	got, err := env.entries.ExportCSV(ctx, 2024, 2, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	want := utf8BOM +
		"Name,Email,Project,Date,Hours,Description,Entry Type\n" +
		"Alice Smith,alice@example.com,Apollo,2024-02-01,7.5,\"Said \"\"hi\"\"\",work\n" +
		"Alice Smith,alice@example.com,Apollo,2024-02-02,8,\"Design, review\",work\n" +
		"bob,bob@example.com,,2024-02-05,0,Holiday,holiday\n"
	if string(got) != want {
		t.Fatalf("unexpected csv:\n%q\nwant:\n%q", got, want)
	}

	again, err := env.entries.ExportCSV(ctx, 2024, 2, nil)
	if err != nil {
		t.Fatalf("export again: %v", err)
	}
	if !bytes.Equal(got, again) {
		t.Fatalf("export is not deterministic")
	}
}

func TestExportCSVEmptyMonth(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, CreateUserInput{Email: "idle@example.com"})

	got, err := env.entries.ExportCSV(context.Background(), 2024, 7, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(string(got), utf8BOM) {
		t.Fatalf("missing byte order mark")
	}
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(string(got), utf8BOM), "\n"), "\n")
	if len(lines) != 1 || lines[0] != strings.Join(csvHeader, ",") {
		t.Fatalf("expected only the header, got %q", lines)
	}
}

func TestExportCSVInvalidMonth(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.entries.ExportCSV(context.Background(), 2024, 13, nil); err == nil {
		t.Fatalf("expected error for month 13")
	}
}
