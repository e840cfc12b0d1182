// cmd/api/errors.go
// This file contains all error-response helpers for the application.
// Every error body is an envelope with an "error" label and a "message".
package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// availableEndpoints is listed in the body of every unmatched-route response.
var availableEndpoints = []string{
	"GET /",
	"GET /health",
	"POST /auth/login",
	"GET /books",
	"GET /books/:id",
	"POST /books",
	"PUT /books/:id",
	"DELETE /books/:id",
}

// logError logs an internal error at ERROR level with the request method and URL for context.
func (app *applicationDependencies) logError(r *http.Request, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("request_method", r.Method),
		zap.String("request_url", r.URL.String()),
	)
	app.logger.Error(err.Error(), fields...)
}

// errorResponse sends a JSON error envelope with the given status code, label and message.
// extra is merged into the body for diagnostics such as "received" or "example".
// It is the low-level building block used by all the specific error helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, label, message string, extra envelope) {
	data := envelope{"error": label, "message": message}
	for k, v := range extra {
		data[k] = v
	}

	err := app.writeJSON(w, status, data, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs a 500-level error and reports its message to the client.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
}

// panicResponse is serverErrorResponse for recovered panics. The stack is
// only sent to clients outside production.
func (app *applicationDependencies) panicResponse(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	app.logError(r, err, zap.ByteString("stack", stack))

	var extra envelope
	if app.config.environment != envProduction {
		extra = envelope{"stack": string(stack)}
	}
	app.errorResponse(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error(), extra)
}

// notFoundResponse handles any unmatched method/path pair.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)
	app.errorResponse(w, r, http.StatusNotFound, "Not Found", message, envelope{"availableEndpoints": availableEndpoints})
}

// bookNotFoundResponse sends a 404 for an unknown book id.
func (app *applicationDependencies) bookNotFoundResponse(w http.ResponseWriter, r *http.Request, id string) {
	app.errorResponse(w, r, http.StatusNotFound, "Not Found", fmt.Sprintf("Book with ID %s not found", id), nil)
}

// badRequestResponse sends a 400 Bad Request error with the given message and optional extras.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, message string, extra envelope) {
	app.errorResponse(w, r, http.StatusBadRequest, "Bad Request", message, extra)
}

// invalidCredentialsResponse sends a 401 after a failed login.
func (app *applicationDependencies) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, "Unauthorized", "Invalid username or password", nil)
}

// authenticationRequiredResponse sends a 401 when no bearer token was presented.
func (app *applicationDependencies) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, "Access denied. No token provided.", "Authorization header with Bearer token is required", nil)
}

// invalidTokenResponse sends a 401 when the bearer token failed verification.
func (app *applicationDependencies) invalidTokenResponse(w http.ResponseWriter, r *http.Request, reason string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	app.errorResponse(w, r, http.StatusUnauthorized, "Invalid or expired token", reason, nil)
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded", nil)
}
