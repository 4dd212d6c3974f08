package service

import (
	"context"
	"strings"

	"timesheet/apperror"
	"timesheet/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users          UserRepository
	projects       ProjectRepository
	minPasswordLen int
	hashCost       int
}

func NewUserService(users UserRepository, projects ProjectRepository, minPasswordLen int) *UserService {
	return &UserService{
		users:          users,
		projects:       projects,
		minPasswordLen: minPasswordLen,
		hashCost:       bcrypt.DefaultCost,
	}
}

type CreateUserInput struct {
	Email     string
	Password  string
	Name      string
	IsAdmin   bool
	ProjectID *uuid.UUID
}

// UpdateUserInput is a patch. ClearProject removes the project association
// and wins over ProjectID.
type UpdateUserInput struct {
	ID           uuid.UUID
	Email        *string
	Name         *string
	Password     *string
	IsAdmin      *bool
	ProjectID    *uuid.UUID
	ClearProject bool
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	email, err := s.validEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := s.validPassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("email already in use")
	} else if !apperror.Is(err, apperror.KindNotFound) {
		return nil, err
	}

	user := &models.User{
		Email:   email,
		Name:    strings.TrimSpace(input.Name),
		IsAdmin: input.IsAdmin,
	}
	if input.ProjectID != nil {
		if err := s.assignProject(ctx, user, *input.ProjectID); err != nil {
			return nil, err
		}
	}

	user.PasswordHash, err = s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, input UpdateUserInput) (*models.User, error) {
	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email, err := s.validEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			if _, err := s.users.FindByEmail(ctx, email); err == nil {
				return nil, apperror.Conflict("email already in use")
			} else if !apperror.Is(err, apperror.KindNotFound) {
				return nil, err
			}
		}
		user.Email = email
	}
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Password != nil {
		if err := s.validPassword(*input.Password); err != nil {
			return nil, err
		}
		if user.PasswordHash, err = s.hashPassword(*input.Password); err != nil {
			return nil, err
		}
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	switch {
	case input.ClearProject:
		user.ProjectID = nil
		user.Project = nil
	case input.ProjectID != nil:
		if err := s.assignProject(ctx, user, *input.ProjectID); err != nil {
			return nil, err
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes a user and returns the record as it was.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// List returns active users ordered by name.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx, models.UserFilter{OrderBy: models.UserOrderName})
}

// ListByEmail returns active users ordered by email, as reports show them.
func (s *UserService) ListByEmail(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx, models.UserFilter{OrderBy: models.UserOrderEmail})
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return nil, apperror.Validation("current password is incorrect")
	}
	if err := s.validPassword(newPassword); err != nil {
		return nil, err
	}

	if user.PasswordHash, err = s.hashPassword(newPassword); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials. Unknown users and wrong passwords produce
// the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if apperror.Is(err, apperror.KindNotFound) {
		return nil, apperror.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthenticated("invalid credentials")
	}
	return user, nil
}

func (s *UserService) assignProject(ctx context.Context, user *models.User, projectID uuid.UUID) error {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	user.ProjectID = &project.ID
	user.Project = project
	return nil
}

func (s *UserService) validEmail(email string) (string, error) {
	email = NormalizeEmail(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return "", apperror.Validation("invalid email address")
	}
	return email, nil
}

func (s *UserService) validPassword(password string) error {
	if len(password) < s.minPasswordLen {
		return apperror.Validation("password must be at least %d characters", s.minPasswordLen)
	}
	return nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", apperror.Internal("hash password", err)
	}
	return string(hashed), nil
}
