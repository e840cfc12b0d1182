package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aoideee/book-library-api/internal/auth"
)

// loginHandler handles POST /auth/login. It exchanges the admin credentials
// for a signed token.
func (app *applicationDependencies) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error(), nil)
		return
	}

	if input.Username == "" || input.Password == "" {
		app.badRequestResponse(w, r, "Username and password are required", nil)
		return
	}

	token, err := app.tokens.Issue(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			app.logger.Info("login rejected", zap.String("remote", r.RemoteAddr))
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message":   "Login successful",
		"token":     token.Value,
		"expiresIn": formatTTL(app.tokens.TTL()),
		"user":      token.User,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
