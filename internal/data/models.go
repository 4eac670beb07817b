// internal/data/models.go
package data

import (
	"errors"
	"sync"
	"time"
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler reaches the store through it.
type Models struct {
	Books *BookModel // Handles all operations on the book collection
}

// NewModels constructs a Models value backed by a fresh, empty book store.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels() Models {
	return Models{
		Books: NewBookModel(),
	}
}

var (
	// ErrRecordNotFound is returned when no book has the requested id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when an insert would reuse an existing id.
	ErrDuplicateID = errors.New("duplicate book id")
	// ErrInsertNotConfirmed is returned when a freshly inserted book cannot be found again.
	ErrInsertNotConfirmed = errors.New("inserted book not found")
)

// Option configures a BookModel.
type Option func(*BookModel)

// WithClock replaces the time source used for insertedAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(m *BookModel) { m.now = now }
}

// WithIDGenerator replaces the function used to create book ids.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(m *BookModel) { m.newID = newID }
}

// BookModel is the in-memory book store. Books are kept in insertion order
// and never handed out directly: every read returns a copy.
// It is safe for concurrent use.
type BookModel struct {
	mu    sync.RWMutex
	books []*Book

	now   func() time.Time
	newID func() (string, error)
}

// NewBookModel returns an empty store.
func NewBookModel(opts ...Option) *BookModel {
	m := &BookModel{
		now:   func() time.Time { return time.Now().UTC() },
		newID: newBookID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Insert adds a new book to the store.
// The generated id, the timestamps and the derived finished flag are written
// back into book. Returns ErrDuplicateID if the generated id is already taken.
// Presence is confirmed before the lock is released, so a concurrent Delete
// cannot make a successful insert look failed.
func (m *BookModel) Insert(book *Book) error {
	id, err := m.newID()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(id) != -1 {
		return ErrDuplicateID
	}

	now := m.now()
	book.ID = id
	book.Finished = book.ReadPage == book.PageCount
	book.InsertedAt = now
	book.UpdatedAt = now

	stored := *book
	m.books = append(m.books, &stored)

	if m.indexOf(id) == -1 {
		return ErrInsertNotConfirmed
	}
	return nil
}

// Get retrieves a copy of the book with the given id.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m *BookModel) Get(id string) (*Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i == -1 {
		return nil, ErrRecordNotFound
	}
	book := *m.books[i]
	return &book, nil
}

// GetAll returns the summaries of every book matching filters, in insertion order.
// The result is never nil.
func (m *BookModel) GetAll(filters BookFilters) ([]*BookSummary, error) {
	match := filters.matcher()

	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := []*BookSummary{}
	for _, b := range m.books {
		if match != nil && !match(b) {
			continue
		}
		summaries = append(summaries, b.summary())
	}
	return summaries, nil
}

// Update replaces the mutable fields of the book with the given id, re-derives
// finished and refreshes updatedAt. The id and insertedAt are kept.
// Returns ErrRecordNotFound if no matching book exists.
func (m *BookModel) Update(id string, input BookInput) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i == -1 {
		return nil, ErrRecordNotFound
	}

	book := m.books[i]
	book.apply(input)
	book.UpdatedAt = m.now()

	updated := *book
	return &updated, nil
}

// Delete removes the book with the given id from the store.
// Returns ErrRecordNotFound if no matching book exists.
func (m *BookModel) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i == -1 {
		return ErrRecordNotFound
	}
	m.books = append(m.books[:i], m.books[i+1:]...)
	return nil
}

// Len returns the number of books in the store.
func (m *BookModel) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books)
}

// indexOf returns the position of the book with the given id, or -1.
// Callers must hold m.mu.
func (m *BookModel) indexOf(id string) int {
	for i, b := range m.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
