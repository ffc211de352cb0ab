package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBookNotFound = errors.New("book does not exist")
var ErrAuthorNotFound = errors.New("author does not exist")
var ErrCopyNotFound = errors.New("copy does not exist")

// Book is a catalog entry describing a title, not a physical copy.
type Book struct {
	BookID     uuid.UUID
	Title      string
	AuthorIDs  []uuid.UUID
	Publisher  string
	Year       int
	ISBN       string
	CallNumber int
	Summary    string
}

// Author is a catalog entry for a book author.
type Author struct {
	AuthorID    uuid.UUID
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	DateOfDeath time.Time
}

// Copy is a physical, uniquely identified instance of a Book. Only the
// catalog fields live here; availability is answered by the ledger.
type Copy struct {
	CopyID uuid.UUID
	BookID uuid.UUID
}

// Store provides read access to catalog records. The loan lifecycle engine
// never mutates the catalog.
type Store interface {
	// GetBook returns the book or ErrBookNotFound.
	GetBook(ctx context.Context, bookID uuid.UUID) (Book, error)

	// GetAuthor returns the author or ErrAuthorNotFound.
	GetAuthor(ctx context.Context, authorID uuid.UUID) (Author, error)

	// GetCopy returns the copy or ErrCopyNotFound.
	GetCopy(ctx context.Context, copyID uuid.UUID) (Copy, error)
}
