package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timesheet/config"

	"github.com/google/uuid"
)

func TestArchiveKey(t *testing.T) {
	id := uuid.MustParse("6f1c1c9e-0d7a-4a4f-9a57-2d0a3c1f4b11")
	got := ArchiveKey(2024, 2, id)
	want := "exports/2024-02/timesheet-report-2-2024-6f1c1c9e-0d7a-4a4f-9a57-2d0a3c1f4b11.csv"
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	key := "exports/2024-02/report.csv"
	location, err := store.Upload(context.Background(), key, "text/csv", strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if location != filepath.Join(dir, "exports", "2024-02", "report.csv") {
		t.Fatalf("unexpected location %s", location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Fatalf("unexpected content %q", data)
	}

	if _, err := store.Upload(context.Background(), "../escape.csv", "text/csv", strings.NewReader("x")); err == nil {
		t.Fatalf("expected path traversal to be rejected")
	}
}

func TestLocalStorageFailedWriteLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	data := io.MultiReader(strings.NewReader("a,b\n"), errReader{})
	if _, err := store.Upload(context.Background(), "exports/2024-02/partial.csv", "text/csv", data); err == nil {
		t.Fatalf("expected upload to fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "exports", "2024-02", "partial.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected partial file to be removed, stat: %v", err)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk full") }

func TestNewStorage(t *testing.T) {
	ctx := context.Background()

	none, err := NewStorage(ctx, config.ExportConfig{Storage: "none"})
	if err != nil || none != nil {
		t.Fatalf("expected disabled storage, got %v %v", none, err)
	}

	local, err := NewStorage(ctx, config.ExportConfig{Storage: "local", LocalPath: t.TempDir()})
	if err != nil {
		t.Fatalf("local: %v", err)
	}
	if _, ok := local.(*LocalStorage); !ok {
		t.Fatalf("expected *LocalStorage got %T", local)
	}

	if _, err := NewStorage(ctx, config.ExportConfig{Storage: "s3"}); err == nil {
		t.Fatalf("expected error for s3 without bucket")
	}
	if _, err := NewStorage(ctx, config.ExportConfig{Storage: "ftp"}); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}
