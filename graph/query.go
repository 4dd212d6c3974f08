package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
)

type monthArgs struct {
	Year  int32
	Month int32
}

type reportArgs struct {
	Year      int32
	Month     int32
	ProjectID *graphql.ID
}

func (r *Resolver) GetCurrentUser(ctx context.Context) (*userResolver, error) {
	caller, err := currentUser(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	user, err := r.users.Get(ctx, caller.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) ListUsers(ctx context.Context) ([]*userResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return newUserResolvers(users), nil
}

func (r *Resolver) GetAllUsers(ctx context.Context) ([]*userResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	users, err := r.users.ListByEmail(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return newUserResolvers(users), nil
}

func (r *Resolver) ListProjects(ctx context.Context) ([]*projectResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	projects, err := r.projects.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return newProjectResolvers(projects), nil
}

// GetTimeEntries lists the caller's own entries for a month.
func (r *Resolver) GetTimeEntries(ctx context.Context, args monthArgs) ([]*timeEntryResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	entries, err := r.entries.ListOwnMonth(ctx, user, int(args.Year), int(args.Month))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return newTimeEntryResolvers(entries), nil
}

func (r *Resolver) GetUserTimeEntriesAdmin(ctx context.Context, args struct {
	UserID graphql.ID
	Year   int32
	Month  int32
}) ([]*timeEntryResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	userID, err := parseID(args.UserID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	entries, err := r.entries.ListUserMonth(ctx, userID, int(args.Year), int(args.Month))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return newTimeEntryResolvers(entries), nil
}

func (r *Resolver) GetAllUsersTimeEntriesReport(ctx context.Context, args reportArgs) ([]*reportRowResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	projectID, err := parseOptionalID(args.ProjectID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	rows, err := r.entries.MonthlyReport(ctx, int(args.Year), int(args.Month), projectID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*reportRowResolver, len(rows))
	for i := range rows {
		out[i] = &reportRowResolver{row: rows[i]}
	}
	return out, nil
}

func (r *Resolver) GetMonthlyReportStats(ctx context.Context, args reportArgs) (*statsResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	projectID, err := parseOptionalID(args.ProjectID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	stats, err := r.entries.MonthlyStats(ctx, int(args.Year), int(args.Month), projectID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &statsResolver{s: stats}, nil
}
