package service

import (
	"context"
	"strings"

	"timesheet/apperror"
	"timesheet/models"

	"github.com/google/uuid"
)

type ProjectService struct {
	projects ProjectRepository
}

func NewProjectService(projects ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns projects newest first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, name string) (*models.Project, error) {
	name, err := validProjectName(name)
	if err != nil {
		return nil, err
	}
	project := &models.Project{Name: name}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, name string) (*models.Project, error) {
	name, err := validProjectName(name)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Name = name
	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func validProjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.Validation("project name is required")
	}
	if len(name) > 100 {
		return "", apperror.Validation("project name must be at most 100 characters")
	}
	return name, nil
}
