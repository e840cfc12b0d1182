package main

import (
	"context"
	"net/http"

	"github.com/aoideee/book-library-api/internal/auth"
)

type contextKey string

const userContextKey = contextKey("user")

// contextSetUser returns a copy of r carrying the authenticated user.
func (app *applicationDependencies) contextSetUser(r *http.Request, user auth.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// contextGetUser fetches the authenticated user. It is only called from
// handlers behind requireAuthenticatedUser, so a missing value is a bug.
func (app *applicationDependencies) contextGetUser(r *http.Request) auth.User {
	user, ok := r.Context().Value(userContextKey).(auth.User)
	if !ok {
		panic("missing user value in request context")
	}
	return user
}
