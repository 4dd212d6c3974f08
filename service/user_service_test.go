package service

import (
	"context"
	"testing"

	"timesheet/apperror"

	"github.com/google/uuid"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, CreateUserInput{Email: "  Jane.Doe@Example.COM ", Name: " Jane Doe "})
	if user.Email != "jane.doe@example.com" || user.Name != "Jane Doe" {
		t.Fatalf("email or name not normalized: %+v", user)
	}
	if user.PasswordHash == "" || user.PasswordHash == "secret123" {
		t.Fatalf("password not hashed")
	}

	_, err := env.users.Create(ctx, CreateUserInput{Email: "jane.doe@example.com", Password: "secret123"})
	if !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("expected conflict got %v", err)
	}

	cases := []CreateUserInput{
		{Email: "not-an-email", Password: "secret123"},
		{Email: "@example.com", Password: "secret123"},
		{Email: "short@example.com", Password: "123"},
	}
	for _, in := range cases {
		if _, err := env.users.Create(ctx, in); !apperror.Is(err, apperror.KindValidation) {
			t.Fatalf("%+v: expected validation error got %v", in, err)
		}
	}

	missing := uuid.New()
	_, err = env.users.Create(ctx, CreateUserInput{Email: "p@example.com", Password: "secret123", ProjectID: &missing})
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected unknown project to be not found, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project, err := env.projects.Create(ctx, "Apollo")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	user := env.createUser(t, CreateUserInput{Email: "user@example.com"})
	env.createUser(t, CreateUserInput{Email: "taken@example.com"})

	updated, err := env.users.Update(ctx, UpdateUserInput{
		ID:        user.ID,
		Name:      ptr("New Name"),
		IsAdmin:   ptr(true),
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New Name" || !updated.IsAdmin || updated.ProjectName() != "Apollo" {
		t.Fatalf("unexpected user %+v", updated)
	}

	stored, err := env.users.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ProjectName() != "Apollo" {
		t.Fatalf("project not persisted")
	}

	cleared, err := env.users.Update(ctx, UpdateUserInput{ID: user.ID, ClearProject: true})
	if err != nil {
		t.Fatalf("clear project: %v", err)
	}
	if cleared.ProjectID != nil || cleared.Project != nil {
		t.Fatalf("project not cleared")
	}

	_, err = env.users.Update(ctx, UpdateUserInput{ID: user.ID, Email: ptr("TAKEN@example.com")})
	if !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("expected conflict got %v", err)
	}

	_, err = env.users.Update(ctx, UpdateUserInput{ID: uuid.New(), Name: ptr("x")})
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
}

func TestDeleteUserIsSoft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, CreateUserInput{Email: "gone@example.com"})

	deleted, err := env.users.Delete(ctx, user.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted.IsDeleted() {
		t.Fatalf("returned user not marked deleted")
	}

	if _, err := env.users.Get(ctx, user.ID); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("deleted user still visible: %v", err)
	}
	users, err := env.users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("deleted user listed")
	}
	if _, err := env.users.Authenticate(ctx, "gone@example.com", "secret123"); !apperror.Is(err, apperror.KindUnauthenticated) {
		t.Fatalf("deleted user can still log in: %v", err)
	}
	if _, err := env.users.Delete(ctx, user.ID); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListUsersOrdering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, CreateUserInput{Email: "a@example.com", Name: "Zed"})
	env.createUser(t, CreateUserInput{Email: "b@example.com", Name: "Amy"})

	byName, err := env.users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if byName[0].Name != "Amy" || byName[1].Name != "Zed" {
		t.Fatalf("not ordered by name: %s, %s", byName[0].Name, byName[1].Name)
	}

	byEmail, err := env.users.ListByEmail(ctx)
	if err != nil {
		t.Fatalf("list by email: %v", err)
	}
	if byEmail[0].Email != "a@example.com" {
		t.Fatalf("not ordered by email: %s", byEmail[0].Email)
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, CreateUserInput{Email: "user@example.com", Password: "old-secret"})

	_, err := env.users.ChangePassword(ctx, user.ID, "wrong", "new-secret")
	if !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
	_, err = env.users.ChangePassword(ctx, user.ID, "old-secret", "abc")
	if !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected short password to be rejected, got %v", err)
	}

	if _, err := env.users.ChangePassword(ctx, user.ID, "old-secret", "new-secret"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := env.users.Authenticate(ctx, "user@example.com", "old-secret"); err == nil {
		t.Fatalf("old password still accepted")
	}
	if _, err := env.users.Authenticate(ctx, "USER@example.com", "new-secret"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
