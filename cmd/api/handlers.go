// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger, the catalog and the token service.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aoideee/book-library-api/internal/data"
	"github.com/aoideee/book-library-api/internal/validator"
)

// bookInput is the JSON body accepted by create and update. PublishedYear
// is decoded loosely so that non-numeric values reach the year check and
// get its message rather than a generic decode error. A JSON null for any
// field is the same as leaving it out.
type bookInput struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ISBN          *string `json:"isbn"`
	PublishedYear any     `json:"publishedYear"`
	Available     *bool   `json:"available"`
}

// fields converts the input into repository fields. year must be the value
// already accepted by validator.ValidPublishedYear.
func (in bookInput) fields(year *int) data.BookFields {
	return data.BookFields{
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		PublishedYear: year,
		Available:     in.Available,
	}
}

// checkPublishedYear validates in.PublishedYear when it was supplied. It
// returns nil with ok=true when the field was absent.
func (app *applicationDependencies) checkPublishedYear(w http.ResponseWriter, r *http.Request, in bookInput) (year *int, ok bool) {
	if in.PublishedYear == nil {
		return nil, true
	}

	now := time.Now()
	y, valid := validator.ValidPublishedYear(in.PublishedYear, now)
	if !valid {
		message := fmt.Sprintf("Invalid publishedYear. Must be a number between %d and %d",
			validator.MinPublishedYear, validator.MaxPublishedYear(now))
		app.badRequestResponse(w, r, message, nil)
		return nil, false
	}
	return &y, true
}

const invalidISBNMessage = "Invalid ISBN format. ISBN should be 10 or 13 digits (hyphens and spaces allowed)"

// listBooksHandler handles GET /books.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books := app.models.Books.GetAll()

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true, "count": len(books), "data": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:id. Responds 404 if no book with that
// ID exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, id)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "data": book}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBookHandler handles POST /books.
// title, author and isbn are required; publishedYear and available are
// optional and defaulted by the repository. Nothing is stored unless every
// check passes.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input bookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error(), nil)
		return
	}

	v := validator.New()
	v.Check(nonEmpty(input.Title), "title", "must be provided")
	v.Check(nonEmpty(input.Author), "author", "must be provided")
	v.Check(nonEmpty(input.ISBN), "isbn", "must be provided")
	if !v.Valid() {
		app.badRequestResponse(w, r, "Missing required fields: title, author, and isbn are required", envelope{
			"received": envelope{
				"title":  !v.Failed("title"),
				"author": !v.Failed("author"),
				"isbn":   !v.Failed("isbn"),
			},
		})
		return
	}

	if !validator.IsValidISBN(*input.ISBN) {
		app.badRequestResponse(w, r, invalidISBNMessage, envelope{"example": "978-0135957059"})
		return
	}

	year, ok := app.checkPublishedYear(w, r, input)
	if !ok {
		return
	}

	book := app.models.Books.Insert(input.fields(year))

	app.logger.Info("book created",
		zap.String("id", book.ID),
		zap.String("by", app.contextGetUser(r).Username),
	)

	err = app.writeJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": "Book created successfully",
		"data":    book,
	}, http.Header{"Location": []string{"/books/" + book.ID}})
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:id.
// Only the supplied fields are changed; the id can never be changed.
// An unknown id is reported before the payload is validated. An empty body
// is an empty patch and returns the record unchanged.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	var input bookInput
	err := app.readJSON(w, r, &input)
	if err != nil && !errors.Is(err, errEmptyBody) {
		app.badRequestResponse(w, r, err.Error(), nil)
		return
	}

	if _, err := app.models.Books.Get(id); err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, id)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if input.ISBN != nil && !validator.IsValidISBN(*input.ISBN) {
		app.badRequestResponse(w, r, invalidISBNMessage, nil)
		return
	}

	year, ok := app.checkPublishedYear(w, r, input)
	if !ok {
		return
	}

	book, err := app.models.Books.Update(id, input.fields(year))
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, id)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Info("book updated",
		zap.String("id", book.ID),
		zap.String("by", app.contextGetUser(r).Username),
	)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Book updated successfully",
		"data":    book,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:id.
// Responds 404 if no book with that ID exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r, id)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Info("book deleted",
		zap.String("id", id),
		zap.String("by", app.contextGetUser(r).Username),
	)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"success":   true,
		"message":   "Book deleted successfully",
		"deletedId": id,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
