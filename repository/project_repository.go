package repository

import (
	"context"
	"errors"
	"fmt"

	"timesheet/apperror"
	"timesheet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
	if isUniqueViolation(err) {
		return apperror.Conflict("project name already in use")
	}
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Save(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
	if isUniqueViolation(err) {
		return apperror.Conflict("project name already in use")
	}
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}
