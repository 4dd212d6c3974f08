// Package service holds the timesheet business rules: entry normalization,
// monthly reporting, CSV export and the user/project/auth use cases. It talks
// to storage only through the repository interfaces below.
package service

import (
	"context"

	"timesheet/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Save(ctx context.Context, project *models.Project) error
}

type TimeEntryRepository interface {
	Find(ctx context.Context, filter models.TimeEntryFilter) ([]models.TimeEntry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.TimeEntry, error)
	Create(ctx context.Context, entry *models.TimeEntry) error
	Save(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, entry *models.TimeEntry) error
}
