// Package postgresstore implements the read-only catalog store on PostgreSQL.
//
// Expected schema (table names are configurable via options):
//
//	CREATE TABLE books (
//	    book_id     UUID PRIMARY KEY,
//	    title       TEXT NOT NULL,
//	    publisher   TEXT NOT NULL DEFAULT '',
//	    year        INT NOT NULL DEFAULT 0,
//	    isbn        TEXT NOT NULL DEFAULT '',
//	    call_number INT NOT NULL DEFAULT 0,
//	    summary     TEXT NOT NULL DEFAULT ''
//	);
//
//	CREATE TABLE authors (
//	    author_id     UUID PRIMARY KEY,
//	    first_name    TEXT NOT NULL,
//	    last_name     TEXT NOT NULL,
//	    date_of_birth TIMESTAMPTZ NULL,
//	    date_of_death TIMESTAMPTZ NULL
//	);
//
//	CREATE TABLE book_authors (
//	    book_id   UUID NOT NULL,
//	    author_id UUID NOT NULL,
//	    PRIMARY KEY (book_id, author_id)
//	);
//
// Copies are read from the same copies table the ledger writes to; this
// store only ever touches the copy_id and book_id columns.
package postgresstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/shelftrack/loanledger-go/catalog"
	"github.com/shelftrack/loanledger-go/internal/adapters"
	"github.com/shelftrack/loanledger-go/ledger"
)

const (
	defaultBooksTableName       = "books"
	defaultAuthorsTableName     = "authors"
	defaultBookAuthorsTableName = "book_authors"
	defaultCopiesTableName      = "copies"
	colBookID                   = "book_id"
	colTitle                    = "title"
	colPublisher                = "publisher"
	colYear                     = "year"
	colISBN                     = "isbn"
	colCallNumber               = "call_number"
	colSummary                  = "summary"
	colAuthorID                 = "author_id"
	colFirstName                = "first_name"
	colLastName                 = "last_name"
	colDateOfBirth              = "date_of_birth"
	colDateOfDeath              = "date_of_death"
	colCopyID                   = "copy_id"
	dialectPostgres             = "postgres"
)

// Store implements catalog.Store on top of PostgreSQL.
type Store struct {
	db                   adapters.DBAdapter
	booksTableName       string
	authorsTableName     string
	bookAuthorsTableName string
	copiesTableName      string
	logger               ledger.Logger
}

// Option defines a functional option for configuring a Store.
type Option func(*Store)

// WithLogger sets the logger for the Store.
func WithLogger(logger ledger.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCopiesTableName sets the table name holding copies; it must match the
// table the ledger engine writes to.
func WithCopiesTableName(tableName string) Option {
	return func(s *Store) {
		s.copiesTableName = tableName
	}
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ledger.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...), nil
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ledger.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...), nil
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ledger.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...), nil
}

func newStore(db adapters.DBAdapter, options ...Option) Store {
	s := Store{
		db:                   db,
		booksTableName:       defaultBooksTableName,
		authorsTableName:     defaultAuthorsTableName,
		bookAuthorsTableName: defaultBookAuthorsTableName,
		copiesTableName:      defaultCopiesTableName,
	}

	for _, option := range options {
		option(&s)
	}

	return s
}

// GetBook returns the book with its author references or catalog.ErrBookNotFound.
func (s Store) GetBook(ctx context.Context, bookID uuid.UUID) (catalog.Book, error) {
	var empty catalog.Book

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.booksTableName).
		Select(colTitle, colPublisher, colYear, colISBN, colCallNumber, colSummary).
		Where(goqu.Ex{colBookID: bookID.String()})

	rows, err := s.query(ctx, selectStmt)
	if err != nil {
		return empty, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, catalog.ErrBookNotFound
	}

	book := catalog.Book{BookID: bookID}

	if scanErr := rows.Scan(&book.Title, &book.Publisher, &book.Year, &book.ISBN, &book.CallNumber, &book.Summary); scanErr != nil {
		return empty, errors.Join(ledger.ErrScanningDBRowFailed, scanErr)
	}

	authorIDs, authorsErr := s.listAuthorIDs(ctx, bookID)
	if authorsErr != nil {
		return empty, authorsErr
	}
	book.AuthorIDs = authorIDs

	return book, nil
}

// GetAuthor returns the author or catalog.ErrAuthorNotFound.
func (s Store) GetAuthor(ctx context.Context, authorID uuid.UUID) (catalog.Author, error) {
	var empty catalog.Author

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.authorsTableName).
		Select(colFirstName, colLastName, colDateOfBirth, colDateOfDeath).
		Where(goqu.Ex{colAuthorID: authorID.String()})

	rows, err := s.query(ctx, selectStmt)
	if err != nil {
		return empty, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, catalog.ErrAuthorNotFound
	}

	author := catalog.Author{AuthorID: authorID}
	var dateOfBirth, dateOfDeath sql.NullTime

	if scanErr := rows.Scan(&author.FirstName, &author.LastName, &dateOfBirth, &dateOfDeath); scanErr != nil {
		return empty, errors.Join(ledger.ErrScanningDBRowFailed, scanErr)
	}

	if dateOfBirth.Valid {
		author.DateOfBirth = dateOfBirth.Time
	}
	if dateOfDeath.Valid {
		author.DateOfDeath = dateOfDeath.Time
	}

	return author, nil
}

// GetCopy returns the copy or catalog.ErrCopyNotFound.
func (s Store) GetCopy(ctx context.Context, copyID uuid.UUID) (catalog.Copy, error) {
	var empty catalog.Copy

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.copiesTableName).
		Select(colBookID).
		Where(goqu.Ex{colCopyID: copyID.String()})

	rows, err := s.query(ctx, selectStmt)
	if err != nil {
		return empty, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, catalog.ErrCopyNotFound
	}

	var bookID sql.NullString

	if scanErr := rows.Scan(&bookID); scanErr != nil {
		return empty, errors.Join(ledger.ErrScanningDBRowFailed, scanErr)
	}

	copyRecord := catalog.Copy{CopyID: copyID}

	if bookID.Valid {
		parsed, parseErr := uuid.Parse(bookID.String)
		if parseErr != nil {
			return empty, errors.Join(ledger.ErrScanningDBRowFailed, parseErr)
		}
		copyRecord.BookID = parsed
	}

	return copyRecord, nil
}

func (s Store) listAuthorIDs(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.bookAuthorsTableName).
		Select(colAuthorID).
		Where(goqu.Ex{colBookID: bookID.String()})

	rows, err := s.query(ctx, selectStmt)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(rows)

	authorIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var authorID string

		if scanErr := rows.Scan(&authorID); scanErr != nil {
			return nil, errors.Join(ledger.ErrScanningDBRowFailed, scanErr)
		}

		parsed, parseErr := uuid.Parse(authorID)
		if parseErr != nil {
			return nil, errors.Join(ledger.ErrScanningDBRowFailed, parseErr)
		}

		authorIDs = append(authorIDs, parsed)
	}

	return authorIDs, nil
}

func (s Store) query(ctx context.Context, selectStmt *goqu.SelectDataset) (adapters.DBRows, error) {
	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.db.Query(ctx, sqlQuery)
	if queryErr != nil {
		if s.logger != nil {
			s.logger.Error("database query execution failed", "error", queryErr.Error(), "query", sqlQuery)
		}
		return nil, errors.Join(ledger.ErrQueryingLedgerFailed, queryErr)
	}

	return rows, nil
}

func (s Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn("failed to close database rows", "error", closeErr.Error())
		}
	}
}

var _ catalog.Store = Store{}
