// internal/data/models.go
package data

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

// Models is a top-level container that groups all repositories together.
// It is passed around the application via the application struct so every
// handler reaches the catalog through an explicit dependency.
type Models struct {
	Books *BookModel // Owns the in-memory book catalog
}

// NewModels constructs a Models value whose book repository is seeded with
// the given records. Call this once during application startup.
func NewModels(seed []Book, opts ...Option) Models {
	return Models{
		Books: NewBookModel(seed, opts...),
	}
}

// ErrRecordNotFound is returned when no book matches the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Option configures a BookModel.
type Option func(*BookModel)

// WithClock overrides the clock used to default publishedYear.
func WithClock(now func() time.Time) Option {
	return func(m *BookModel) {
		m.now = now
	}
}

// BookModel is the in-memory book repository. The sequence and the id
// counter are guarded by mu for the whole of every operation.
type BookModel struct {
	mu     sync.RWMutex
	books  []Book
	nextID int
	now    func() time.Time
}

// NewBookModel returns a repository holding a copy of seed. The id counter
// starts one past the highest numeric id in seed (or at 1).
func NewBookModel(seed []Book, opts ...Option) *BookModel {
	m := &BookModel{
		books:  make([]Book, 0, len(seed)),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, book := range seed {
		m.books = append(m.books, book)

		if id, err := strconv.Atoi(book.ID); err == nil && id >= m.nextID {
			m.nextID = id + 1
		}
	}

	return m
}

// GetAll returns a copy of every book in insertion order.
func (m *BookModel) GetAll() []Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := make([]Book, len(m.books))
	copy(books, m.books)
	return books
}

// Count returns the number of books currently held.
func (m *BookModel) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.books)
}

// Get retrieves a single book by id.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m *BookModel) Get(id string) (*Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}

	book := m.books[i]
	return &book, nil
}

// Insert appends a new book built from input and returns it.
// It does not validate; callers are expected to have done so. The id comes
// from the counter, publishedYear defaults to the current year and
// available defaults to true.
func (m *BookModel) Insert(input BookFields) Book {
	m.mu.Lock()
	defer m.mu.Unlock()

	book := Book{
		PublishedYear: m.now().Year(),
		Available:     true,
	}
	input.apply(&book)

	book.ID = strconv.Itoa(m.nextID)
	m.nextID++

	m.books = append(m.books, book)
	return book
}

// Update merges the non-nil fields of input over the book with the given id.
// Returns ErrRecordNotFound if no such book exists; it never creates one.
func (m *BookModel) Update(id string, input BookFields) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}

	input.apply(&m.books[i])

	book := m.books[i]
	return &book, nil
}

// Delete removes the book with the given id.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}

	m.books = append(m.books[:i], m.books[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (m *BookModel) indexOf(id string) int {
	for i := range m.books {
		if m.books[i].ID == id {
			return i
		}
	}
	return -1
}
