// Package memorystore implements the catalog store in process memory,
// intended for unit tests and embedders.
package memorystore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shelftrack/loanledger-go/catalog"
)

// Store implements catalog.Store with RWMutex-guarded maps.
type Store struct {
	mu      sync.RWMutex
	books   map[uuid.UUID]catalog.Book
	authors map[uuid.UUID]catalog.Author
	copies  map[uuid.UUID]catalog.Copy
}

// NewStore creates a new empty in-memory catalog store.
func NewStore() *Store {
	return &Store{
		books:   make(map[uuid.UUID]catalog.Book),
		authors: make(map[uuid.UUID]catalog.Author),
		copies:  make(map[uuid.UUID]catalog.Copy),
	}
}

// PutBook adds or replaces a book record.
func (s *Store) PutBook(book catalog.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[book.BookID] = book
}

// PutAuthor adds or replaces an author record.
func (s *Store) PutAuthor(author catalog.Author) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authors[author.AuthorID] = author
}

// PutCopy adds or replaces a copy record.
func (s *Store) PutCopy(copyRecord catalog.Copy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.copies[copyRecord.CopyID] = copyRecord
}

// GetBook returns the book or catalog.ErrBookNotFound.
func (s *Store) GetBook(_ context.Context, bookID uuid.UUID) (catalog.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, exists := s.books[bookID]
	if !exists {
		return catalog.Book{}, catalog.ErrBookNotFound
	}

	return book, nil
}

// GetAuthor returns the author or catalog.ErrAuthorNotFound.
func (s *Store) GetAuthor(_ context.Context, authorID uuid.UUID) (catalog.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, exists := s.authors[authorID]
	if !exists {
		return catalog.Author{}, catalog.ErrAuthorNotFound
	}

	return author, nil
}

// GetCopy returns the copy or catalog.ErrCopyNotFound.
func (s *Store) GetCopy(_ context.Context, copyID uuid.UUID) (catalog.Copy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copyRecord, exists := s.copies[copyID]
	if !exists {
		return catalog.Copy{}, catalog.ErrCopyNotFound
	}

	return copyRecord, nil
}

var _ catalog.Store = (*Store)(nil)
