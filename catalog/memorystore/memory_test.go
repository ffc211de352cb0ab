package memorystore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/loanledger-go/catalog"
	"github.com/shelftrack/loanledger-go/catalog/memorystore"
)

func Test_Store_BookRoundTrip(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewStore()

	author := catalog.Author{AuthorID: uuid.New(), FirstName: "Ursula", LastName: "Le Guin"}
	book := catalog.Book{
		BookID:    uuid.New(),
		Title:     "The Dispossessed",
		AuthorIDs: []uuid.UUID{author.AuthorID},
		ISBN:      "9780060512750",
	}

	store.PutAuthor(author)
	store.PutBook(book)

	// act
	foundBook, err := store.GetBook(ctx, book.BookID)

	// assert
	require.NoError(t, err)
	assert.Equal(t, book, foundBook)

	foundAuthor, err := store.GetAuthor(ctx, author.AuthorID)
	require.NoError(t, err)
	assert.Equal(t, author, foundAuthor)
}

func Test_Store_CopyRoundTrip(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewStore()

	copyRecord := catalog.Copy{CopyID: uuid.New(), BookID: uuid.New()}
	store.PutCopy(copyRecord)

	// act
	foundCopy, err := store.GetCopy(ctx, copyRecord.CopyID)

	// assert
	require.NoError(t, err)
	assert.Equal(t, copyRecord, foundCopy)
}

func Test_Store_NotFoundErrors(t *testing.T) {
	ctx := context.Background()
	store := memorystore.NewStore()

	_, err := store.GetBook(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)

	_, err = store.GetAuthor(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	_, err = store.GetCopy(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrCopyNotFound)
}
