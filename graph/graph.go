// Package graph serves the GraphQL API. Every request reaching it has already
// passed the bearer-token middleware; resolvers only check the admin flag.
package graph

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"

	"timesheet/apperror"
	"timesheet/middleware"
	"timesheet/models"
	"timesheet/service"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

//go:embed schema.graphql
var schemaSDL string

type Resolver struct {
	users    *service.UserService
	projects *service.ProjectService
	entries  *service.TimeEntryService
	log      *slog.Logger
}

func NewResolver(users *service.UserService, projects *service.ProjectService, entries *service.TimeEntryService, log *slog.Logger) *Resolver {
	return &Resolver{
		users:    users,
		projects: projects,
		entries:  entries,
		log:      log,
	}
}

func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, resolver, graphql.MaxDepth(12))
}

func NewHandler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

func currentUser(ctx context.Context) (*models.User, error) {
	user := middleware.UserFromContext(ctx)
	if user == nil {
		return nil, apperror.Unauthenticated("unauthenticated")
	}
	return user, nil
}

func requireAdmin(ctx context.Context) (*models.User, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperror.Forbidden("admin access required")
	}
	return user, nil
}

func parseID(id graphql.ID) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid id %q", string(id))
	}
	return parsed, nil
}

func parseOptionalID(id *graphql.ID) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := parseID(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
