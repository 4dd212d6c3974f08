package graph

import (
	"time"

	"timesheet/models"
	"timesheet/service"

	"github.com/graph-gophers/graphql-go"
)

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type userResolver struct {
	u *models.User
}

func newUserResolvers(users []models.User) []*userResolver {
	out := make([]*userResolver, len(users))
	for i := range users {
		out[i] = &userResolver{u: &users[i]}
	}
	return out
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.u.ID.String()) }
func (r *userResolver) Email() string  { return r.u.Email }
func (r *userResolver) IsAdmin() bool  { return r.u.IsAdmin }

func (r *userResolver) Name() *string {
	if r.u.Name == "" {
		return nil
	}
	return &r.u.Name
}

func (r *userResolver) Project() *projectResolver {
	if r.u.Project == nil {
		return nil
	}
	return &projectResolver{p: r.u.Project}
}

func (r *userResolver) ProjectID() *graphql.ID {
	if r.u.ProjectID == nil {
		return nil
	}
	id := graphql.ID(r.u.ProjectID.String())
	return &id
}

func (r *userResolver) CreatedAt() string { return timestamp(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() string { return timestamp(r.u.UpdatedAt) }

type projectResolver struct {
	p *models.Project
}

func newProjectResolvers(projects []models.Project) []*projectResolver {
	out := make([]*projectResolver, len(projects))
	for i := range projects {
		out[i] = &projectResolver{p: &projects[i]}
	}
	return out
}

func (r *projectResolver) ID() graphql.ID    { return graphql.ID(r.p.ID.String()) }
func (r *projectResolver) Name() string      { return r.p.Name }
func (r *projectResolver) CreatedAt() string { return timestamp(r.p.CreatedAt) }
func (r *projectResolver) UpdatedAt() string { return timestamp(r.p.UpdatedAt) }

type timeEntryResolver struct {
	e *models.TimeEntry
}

func newTimeEntryResolvers(entries []models.TimeEntry) []*timeEntryResolver {
	out := make([]*timeEntryResolver, len(entries))
	for i := range entries {
		out[i] = &timeEntryResolver{e: &entries[i]}
	}
	return out
}

func (r *timeEntryResolver) ID() graphql.ID      { return graphql.ID(r.e.ID.String()) }
func (r *timeEntryResolver) Date() string        { return r.e.Day() }
func (r *timeEntryResolver) Hours() float64      { return r.e.Hours }
func (r *timeEntryResolver) Description() string { return r.e.Description }
func (r *timeEntryResolver) EntryType() string   { return string(r.e.EntryType) }
func (r *timeEntryResolver) User() *userResolver { return &userResolver{u: &r.e.User} }
func (r *timeEntryResolver) UserID() graphql.ID  { return graphql.ID(r.e.UserID.String()) }
func (r *timeEntryResolver) CreatedAt() string   { return timestamp(r.e.CreatedAt) }
func (r *timeEntryResolver) UpdatedAt() string   { return timestamp(r.e.UpdatedAt) }

type reportRowResolver struct {
	row service.ReportRow
}

func (r *reportRowResolver) UserID() graphql.ID      { return graphql.ID(r.row.User.ID.String()) }
func (r *reportRowResolver) UserEmail() string       { return r.row.User.Email }
func (r *reportRowResolver) UserFirstName() *string  { return r.row.User.FirstName() }
func (r *reportRowResolver) UserLastName() *string   { return r.row.User.LastName() }
func (r *reportRowResolver) EntriesCount() int32     { return int32(len(r.row.Entries)) }
func (r *reportRowResolver) WorkDaysCount() int32    { return int32(r.row.WorkDaysCount) }
func (r *reportRowResolver) TotalWorkHours() float64 { return r.row.TotalWorkHours }

func (r *reportRowResolver) Entries() []*timeEntryResolver {
	return newTimeEntryResolvers(r.row.Entries)
}

type statsResolver struct {
	s service.MonthlyStats
}

func (r *statsResolver) TotalUsers() int32               { return int32(r.s.TotalUsers) }
func (r *statsResolver) WorkingDaysInMonth() int32       { return int32(r.s.WorkingDaysInMonth) }
func (r *statsResolver) UsersWithMissingEntries() int32  { return int32(r.s.UsersWithMissingEntries) }
func (r *statsResolver) UsersWithCompleteEntries() int32 { return int32(r.s.UsersWithCompleteEntries) }
