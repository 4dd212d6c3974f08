package graph

import (
	"context"

	"timesheet/service"

	"github.com/graph-gophers/graphql-go"
)

type createUserInput struct {
	Email     string
	Password  string
	Name      *string
	IsAdmin   *bool
	ProjectID *graphql.ID
}

type updateUserInput struct {
	ID        graphql.ID
	Email     *string
	Name      *string
	Password  *string
	IsAdmin   *bool
	ProjectID *graphql.ID
}

type createProjectInput struct {
	Name string
}

type updateProjectInput struct {
	ID   graphql.ID
	Name string
}

type createTimeEntryInput struct {
	Date        string
	Hours       float64
	Description string
	EntryType   *string
}

type updateTimeEntryInput struct {
	ID          graphql.ID
	Date        *string
	Hours       *float64
	Description *string
	EntryType   *string
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input createUserInput }) (*userResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	projectID, err := parseOptionalID(args.Input.ProjectID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	input := service.CreateUserInput{
		Email:     args.Input.Email,
		Password:  args.Input.Password,
		ProjectID: projectID,
	}
	if args.Input.Name != nil {
		input.Name = *args.Input.Name
	}
	if args.Input.IsAdmin != nil {
		input.IsAdmin = *args.Input.IsAdmin
	}

	user, err := r.users.Create(ctx, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct{ Input updateUserInput }) (*userResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	id, err := parseID(args.Input.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	input := service.UpdateUserInput{
		ID:       id,
		Email:    args.Input.Email,
		Name:     args.Input.Name,
		Password: args.Input.Password,
		IsAdmin:  args.Input.IsAdmin,
	}
	if p := args.Input.ProjectID; p != nil {
		if *p == "" {
			input.ClearProject = true
		} else if input.ProjectID, err = parseOptionalID(p); err != nil {
			return nil, r.fail(ctx, err)
		}
	}

	user, err := r.users.Update(ctx, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	user, err := r.users.Delete(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) ChangePassword(ctx context.Context, args struct {
	CurrentPassword string
	NewPassword     string
}) (*userResolver, error) {
	caller, err := currentUser(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	user, err := r.users.ChangePassword(ctx, caller.ID, args.CurrentPassword, args.NewPassword)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) CreateProject(ctx context.Context, args struct{ Input createProjectInput }) (*projectResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	project, err := r.projects.Create(ctx, args.Input.Name)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &projectResolver{p: project}, nil
}

func (r *Resolver) UpdateProject(ctx context.Context, args struct{ Input updateProjectInput }) (*projectResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, r.fail(ctx, err)
	}
	id, err := parseID(args.Input.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	project, err := r.projects.Update(ctx, id, args.Input.Name)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &projectResolver{p: project}, nil
}

func (r *Resolver) CreateTimeEntry(ctx context.Context, args struct{ Input createTimeEntryInput }) (*timeEntryResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	input := service.CreateEntryInput{
		Date:        args.Input.Date,
		Hours:       args.Input.Hours,
		Description: args.Input.Description,
	}
	if args.Input.EntryType != nil {
		input.EntryType = *args.Input.EntryType
	}

	entry, err := r.entries.Create(ctx, user, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &timeEntryResolver{e: entry}, nil
}

func (r *Resolver) UpdateTimeEntry(ctx context.Context, args struct{ Input updateTimeEntryInput }) (*timeEntryResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	id, err := parseID(args.Input.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	entry, err := r.entries.Update(ctx, user, service.UpdateEntryInput{
		ID:          id,
		Date:        args.Input.Date,
		Hours:       args.Input.Hours,
		Description: args.Input.Description,
		EntryType:   args.Input.EntryType,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &timeEntryResolver{e: entry}, nil
}

func (r *Resolver) DeleteTimeEntry(ctx context.Context, args struct{ ID graphql.ID }) (*timeEntryResolver, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	entry, err := r.entries.Delete(ctx, user, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &timeEntryResolver{e: entry}, nil
}
