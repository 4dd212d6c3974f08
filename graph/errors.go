package graph

import (
	"context"

	"timesheet/apperror"
)

// resolverError is what resolvers return. graphql-go copies Extensions into
// the response only when the error is returned unwrapped.
type resolverError struct {
	code    apperror.Kind
	message string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.code)}
}

// fail converts a service error into a client-facing one. Internal causes are
// logged and replaced by a generic message.
func (r *Resolver) fail(ctx context.Context, err error) error {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		r.log.ErrorContext(ctx, "graphql resolver failed", "error", err)
	}
	return &resolverError{code: kind, message: apperror.PublicMessage(err)}
}
