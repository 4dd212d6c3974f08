// Package memrepo is an in-memory implementation of the service repositories.
// It mirrors the gorm repositories' observable behaviour (soft-deleted users,
// preloaded relations, ordering, unique constraints) and backs the tests.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"timesheet/apperror"
	"timesheet/models"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]models.User
	projects map[uuid.UUID]models.Project
	entries  map[uuid.UUID]models.TimeEntry
	last     time.Time
}

func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]models.User),
		projects: make(map[uuid.UUID]models.Project),
		entries:  make(map[uuid.UUID]models.TimeEntry),
	}
}

// now returns strictly increasing timestamps so creation order is stable.
// Callers hold s.mu.
func (s *Store) now() time.Time {
	t := time.Now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *Store) Users() *UserRepository            { return &UserRepository{s: s} }
func (s *Store) Projects() *ProjectRepository      { return &ProjectRepository{s: s} }
func (s *Store) TimeEntries() *TimeEntryRepository { return &TimeEntryRepository{s: s} }

// withProject returns a copy of u with Project loaded.
func (s *Store) withProject(u models.User) models.User {
	u.Project = nil
	if u.ProjectID != nil {
		if p, ok := s.projects[*u.ProjectID]; ok {
			u.Project = &p
		}
	}
	return u
}

// withUser returns a copy of e with its owner loaded when the owner is active.
func (s *Store) withUser(e models.TimeEntry) models.TimeEntry {
	e.User = models.User{}
	if u, ok := s.users[e.UserID]; ok && !u.IsDeleted() {
		e.User = s.withProject(u)
	}
	return e
}

type UserRepository struct{ s *Store }

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok || u.IsDeleted() {
		return nil, apperror.NotFound("user not found")
	}
	u = r.s.withProject(u)
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email && !u.IsDeleted() {
			u = r.s.withProject(u)
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := []models.User{}
	for _, u := range r.s.users {
		if u.IsDeleted() {
			continue
		}
		if filter.ProjectID != nil && (u.ProjectID == nil || *u.ProjectID != *filter.ProjectID) {
			continue
		}
		users = append(users, r.s.withProject(u))
	}

	sort.Slice(users, func(i, j int) bool {
		if filter.OrderBy == models.UserOrderName && users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].Email < users[j].Email
	})
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// The unique index also covers soft-deleted rows.
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return apperror.Conflict("email already in use")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now

	stored := *user
	stored.Project = nil
	r.s.users[user.ID] = stored
	return nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, u := range r.s.users {
		if id != user.ID && u.Email == user.Email {
			return apperror.Conflict("email already in use")
		}
	}
	user.UpdatedAt = r.s.now()

	stored := *user
	stored.Project = nil
	r.s.users[user.ID] = stored
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[user.ID]
	if !ok {
		return nil
	}
	stored.DeletedAt.Time = r.s.now()
	stored.DeletedAt.Valid = true
	r.s.users[user.ID] = stored
	user.DeletedAt = stored.DeletedAt
	return nil
}

type ProjectRepository struct{ s *Store }

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	projects := []models.Project{}
	for _, p := range r.s.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.projects[id]
	if !ok {
		return nil, apperror.NotFound("project not found")
	}
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.projects {
		if p.Name == project.Name {
			return apperror.Conflict("project name already in use")
		}
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := r.s.now()
	project.CreatedAt, project.UpdatedAt = now, now
	r.s.projects[project.ID] = *project
	return nil
}

func (r *ProjectRepository) Save(ctx context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, p := range r.s.projects {
		if id != project.ID && p.Name == project.Name {
			return apperror.Conflict("project name already in use")
		}
	}
	project.UpdatedAt = r.s.now()
	r.s.projects[project.ID] = *project
	return nil
}

type TimeEntryRepository struct{ s *Store }

func (r *TimeEntryRepository) Find(ctx context.Context, filter models.TimeEntryFilter) ([]models.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	from := filter.From.Format(models.DateLayout)
	to := filter.To.Format(models.DateLayout)

	entries := []models.TimeEntry{}
	for _, e := range r.s.entries {
		day := e.Day()
		if day < from || day > to {
			continue
		}
		if filter.UserID != nil && e.UserID != *filter.UserID {
			continue
		}
		entries = append(entries, r.s.withUser(e))
	}

	sort.Slice(entries, func(i, j int) bool {
		di, dj := entries[i].Day(), entries[j].Day()
		if di == dj {
			ci, cj := entries[i].CreatedAt, entries[j].CreatedAt
			if filter.Descending {
				return ci.After(cj)
			}
			return ci.Before(cj)
		}
		if filter.Descending {
			return di > dj
		}
		return di < dj
	})
	return entries, nil
}

func (r *TimeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entries[id]
	if !ok {
		return nil, apperror.NotFound("time entry not found")
	}
	e = r.s.withUser(e)
	return &e, nil
}

func (r *TimeEntryRepository) Create(ctx context.Context, entry *models.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := r.s.now()
	entry.CreatedAt, entry.UpdatedAt = now, now

	stored := *entry
	stored.User = models.User{}
	r.s.entries[entry.ID] = stored
	return nil
}

func (r *TimeEntryRepository) Save(ctx context.Context, entry *models.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.UpdatedAt = r.s.now()
	stored := *entry
	stored.User = models.User{}
	r.s.entries[entry.ID] = stored
	return nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, entry *models.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.entries, entry.ID)
	return nil
}
