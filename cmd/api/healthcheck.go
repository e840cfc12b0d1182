package main

import (
	"net/http"
	"time"
)

// isoMillis matches JavaScript's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// healthcheckHandler handles GET /health.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(isoMillis),
		"uptime":      time.Since(app.startedAt).Seconds(),
		"environment": app.config.environment,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// indexHandler handles GET / with a directory of the available endpoints.
func (app *applicationDependencies) indexHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{
		"message": "Book Library API Mock Server",
		"version": appVersion,
		"endpoints": envelope{
			"auth": envelope{
				"login": "POST /auth/login",
			},
			"books": envelope{
				"getAll":  "GET /books",
				"getById": "GET /books/:id",
				"create":  "POST /books (requires auth)",
				"update":  "PUT /books/:id (requires auth)",
				"delete":  "DELETE /books/:id (requires auth)",
			},
			"health": "GET /health",
		},
		"documentation": "See README.md for detailed API documentation",
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
