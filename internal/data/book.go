// Package data provides the data models and the in-memory store
// for the bookshelf API.
package data

import (
	"time"

	"github.com/aoideee/bookshelf-api/internal/validator"
)

// Book represents a single book record held by the store.
type Book struct {
	ID         string    `json:"id"`         // Server-generated identifier, never changes
	Name       string    `json:"name"`       // Title of the book
	Year       int       `json:"year"`       // Publication year
	Author     string    `json:"author"`     // Author name
	Summary    string    `json:"summary"`    // Short description
	Publisher  string    `json:"publisher"`  // Name of the publishing company
	PageCount  int       `json:"pageCount"`  // Total pages
	ReadPage   int       `json:"readPage"`   // Pages read so far
	Finished   bool      `json:"finished"`   // Derived: ReadPage == PageCount at write time
	Reading    bool      `json:"reading"`    // Supplied by the client
	InsertedAt time.Time `json:"insertedAt"` // Set once when the book is added
	UpdatedAt  time.Time `json:"updatedAt"`  // Refreshed on every successful update
}

// BookSummary is the reduced view of a Book returned by list requests.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// BookInput holds the fields a client supplies when adding or editing a book.
// Name is a pointer so an absent name can be told apart from a supplied one.
// A JSON null decodes to nil and is treated as absent on purpose, so
// {"name":null} is rejected just like a body without the key.
type BookInput struct {
	Name      *string `json:"name"`
	Year      int     `json:"year"`
	Author    string  `json:"author"`
	Summary   string  `json:"summary"`
	Publisher string  `json:"publisher"`
	PageCount int     `json:"pageCount"`
	ReadPage  int     `json:"readPage"`
	Reading   bool    `json:"reading"`
}

// ValidateBookInput runs the write-time checks for a book in order:
// the name must be present, then readPage must not exceed pageCount.
func ValidateBookInput(v *validator.Validator, input BookInput) {
	v.Check(input.Name != nil, "name", "missing name")
	v.Check(input.ReadPage <= input.PageCount, "readPage", "readPage exceeds pageCount")
}

// summary projects b onto the fields exposed by list requests.
func (b *Book) summary() *BookSummary {
	return &BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// apply copies the mutable fields of input onto b and re-derives Finished.
// ID, InsertedAt and UpdatedAt are left to the caller.
func (b *Book) apply(input BookInput) {
	if input.Name != nil {
		b.Name = *input.Name
	}
	b.Year = input.Year
	b.Author = input.Author
	b.Summary = input.Summary
	b.Publisher = input.Publisher
	b.PageCount = input.PageCount
	b.ReadPage = input.ReadPage
	b.Reading = input.Reading
	b.Finished = b.ReadPage == b.PageCount
}
