// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the application middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → requestID → rateLimit → router
//
// Current endpoints:
//
//	POST   /books           – add a new book
//	GET    /books           – list books, optionally filtered by name, reading or finished
//	GET    /books/:bookId   – retrieve a single book by id
//	PUT    /books/:bookId   – replace the fields of an existing book
//	DELETE /books/:bookId   – delete a book by id
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodPost, "/books", app.addBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", app.editBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", app.deleteBookHandler)

	// recoverPanic is outermost so it catches panics from every later layer.
	return app.recoverPanic(app.requestID(app.rateLimit(router)))
}
