package service

import (
	"context"
	"testing"

	"timesheet/models"
	"timesheet/repository"
	"timesheet/repository/memrepo"

	"golang.org/x/crypto/bcrypt"
)

var (
	_ UserRepository      = (*repository.UserRepository)(nil)
	_ ProjectRepository   = (*repository.ProjectRepository)(nil)
	_ TimeEntryRepository = (*repository.TimeEntryRepository)(nil)
	_ UserRepository      = (*memrepo.UserRepository)(nil)
	_ ProjectRepository   = (*memrepo.ProjectRepository)(nil)
	_ TimeEntryRepository = (*memrepo.TimeEntryRepository)(nil)
)

type testEnv struct {
	store    *memrepo.Store
	users    *UserService
	projects *ProjectService
	entries  *TimeEntryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memrepo.New()
	users := NewUserService(store.Users(), store.Projects(), 6)
	users.hashCost = bcrypt.MinCost
	return &testEnv{
		store:    store,
		users:    users,
		projects: NewProjectService(store.Projects()),
		entries:  NewTimeEntryService(store.TimeEntries(), store.Users()),
	}
}

func (e *testEnv) createUser(t *testing.T, input CreateUserInput) *models.User {
	t.Helper()
	if input.Password == "" {
		input.Password = "secret123"
	}
	user, err := e.users.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create user %s: %v", input.Email, err)
	}
	return user
}

func (e *testEnv) createEntry(t *testing.T, owner *models.User, input CreateEntryInput) *models.TimeEntry {
	t.Helper()
	entry, err := e.entries.Create(context.Background(), owner, input)
	if err != nil {
		t.Fatalf("create entry %+v: %v", input, err)
	}
	return entry
}
