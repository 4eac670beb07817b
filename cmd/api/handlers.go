// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the book store.
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aoideee/bookshelf-api/internal/data"
	"github.com/aoideee/bookshelf-api/internal/validator"
)

// readBookInput decodes and validates the body shared by the add and edit
// handlers. On failure it writes a 400 response prefixed with action and
// returns false.
func (app *applicationDependencies) readBookInput(w http.ResponseWriter, r *http.Request, action string) (data.BookInput, bool) {
	var input data.BookInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Sprintf("failed to %s book: %s", action, err))
		return input, false
	}

	v := validator.New()
	data.ValidateBookInput(v, input)
	if !v.Valid() {
		_, message, _ := v.First()
		app.badRequestResponse(w, r, fmt.Sprintf("failed to %s book: %s", action, message))
		return input, false
	}

	return input, true
}

// addBookHandler handles POST /books.
// It validates the new book, stores it and responds 201 with the generated id.
func (app *applicationDependencies) addBookHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readBookInput(w, r, "add")
	if !ok {
		return
	}

	book := &data.Book{
		Name:      *input.Name,
		Year:      input.Year,
		Author:    input.Author,
		Summary:   input.Summary,
		Publisher: input.Publisher,
		PageCount: input.PageCount,
		ReadPage:  input.ReadPage,
		Reading:   input.Reading,
	}

	// Insert writes the id, timestamps and finished flag back into book.
	err := app.models.Books.Insert(book)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, success("book added successfully", envelope{"bookId": book.ID}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// It returns the id, name and publisher of every book matching the optional
// name, reading or finished query filters.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := data.BookFilters{
		Name:     app.readString(qs, "name", ""),
		Reading:  app.readString(qs, "reading", ""),
		Finished: app.readString(qs, "finished", ""),
	}

	books, err := app.models.Books.GetAll(filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("", envelope{"books": books}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:bookId.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readBookIDParam(r)

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "book not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("", envelope{"book": book}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// editBookHandler handles PUT /books/:bookId.
// The body is validated before the existence check, so an invalid body for
// an unknown id is reported as 400 rather than 404.
func (app *applicationDependencies) editBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readBookIDParam(r)

	input, ok := app.readBookInput(w, r, "update")
	if !ok {
		return
	}

	_, err := app.models.Books.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "failed to update book: id not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("book updated successfully", nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:bookId.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readBookIDParam(r)

	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "failed to delete book: id not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("book deleted successfully", nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
