// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → enableCORS → logRequests → rateLimit → router
//
// Current endpoints:
//
//	GET    /             – endpoint directory
//	GET    /health       – liveness and uptime
//	POST   /auth/login   – exchange the admin credentials for a token
//	GET    /books        – list all books
//	GET    /books/:id    – retrieve a single book by ID
//	POST   /books        – create a new book (token required)
//	PUT    /books/:id    – update an existing book (token required)
//	DELETE /books/:id    – delete a book by ID (token required)
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Unknown methods on known paths are reported as 404 like unknown paths.
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	router.HandlerFunc(http.MethodGet, "/", app.indexHandler)
	router.HandlerFunc(http.MethodGet, "/health", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/auth/login", app.loginHandler)

	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPost, "/books", app.requireAuthenticatedUser(app.createBookHandler))
	router.HandlerFunc(http.MethodPut, "/books/:id", app.requireAuthenticatedUser(app.updateBookHandler))
	router.HandlerFunc(http.MethodDelete, "/books/:id", app.requireAuthenticatedUser(app.deleteBookHandler))

	return app.recoverPanic(app.enableCORS(app.logRequests(app.rateLimit(router))))
}
