// Package data provides the book record type and the in-memory repository
// that owns the catalog for the lifetime of the process.
package data

// Book represents a single book record in the catalog.
type Book struct {
	ID            string `json:"id"`            // Assigned by the repository, never changes
	Title         string `json:"title"`         // Title of the book
	Author        string `json:"author"`        // Author(s) as a single display string
	ISBN          string `json:"isbn"`          // ISBN-10 or ISBN-13, hyphens and spaces allowed
	PublishedYear int    `json:"publishedYear"` // Year of publication
	Available     bool   `json:"available"`     // Whether the book can currently be borrowed
}

// BookFields carries the fields a caller supplies when creating or updating a book.
// Every field is a pointer so we can distinguish between "not provided" (nil)
// and "intentionally set to zero/empty". Only non-nil fields are applied.
type BookFields struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
	Available     *bool
}

// apply copies every non-nil field in f onto b. The ID is never touched.
func (f BookFields) apply(b *Book) {
	if f.Title != nil {
		b.Title = *f.Title
	}
	if f.Author != nil {
		b.Author = *f.Author
	}
	if f.ISBN != nil {
		b.ISBN = *f.ISBN
	}
	if f.PublishedYear != nil {
		b.PublishedYear = *f.PublishedYear
	}
	if f.Available != nil {
		b.Available = *f.Available
	}
}
