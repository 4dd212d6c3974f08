package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"timesheet/config"

	"github.com/google/uuid"
)

// Storage archives generated export documents.
type Storage interface {
	// Upload stores data under key and returns the location it was written to.
	Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error)
}

type StorageType string

const (
	StorageTypeNone  StorageType = "none"
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// NewStorage builds the configured backend. It returns a nil Storage when
// archiving is disabled.
func NewStorage(ctx context.Context, cfg config.ExportConfig) (Storage, error) {
	switch StorageType(cfg.Storage) {
	case StorageTypeNone, "":
		return nil, nil
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for s3 export storage")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown export storage: %s", cfg.Storage)
	}
}

// ArchiveKey names the archived copy of a monthly report.
func ArchiveKey(year, month int, id uuid.UUID) string {
	return fmt.Sprintf("exports/%04d-%02d/timesheet-report-%d-%d-%s.csv", year, month, month, year, id)
}
