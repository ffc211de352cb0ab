// Package postgresengine implements the loan ledger on PostgreSQL.
//
// Both mutations execute as a single data-modifying CTE statement, so the
// copy-status check and the loan write form one atomic unit: of two borrow
// attempts racing for the same copy, exactly one statement claims the copy
// row and the other affects zero rows and reports a conflict.
//
// Expected schema (table names are configurable via options):
//
//	CREATE TABLE copies (
//	    copy_id     UUID PRIMARY KEY,
//	    book_id     UUID NULL,
//	    status      TEXT NOT NULL DEFAULT 'available',
//	    borrower_id UUID NULL,
//	    due_back    TIMESTAMPTZ NULL
//	);
//
// The book_id column is owned by the catalog; the ledger never touches it.
//
//	CREATE TABLE loans (
//	    loan_id     UUID PRIMARY KEY,
//	    copy_id     UUID NOT NULL,
//	    borrower_id UUID NOT NULL,
//	    borrowed_at TIMESTAMPTZ NOT NULL,
//	    due_at      TIMESTAMPTZ NOT NULL,
//	    returned_at TIMESTAMPTZ NULL
//	);
//
//	CREATE UNIQUE INDEX loans_one_open_per_copy ON loans (copy_id) WHERE returned_at IS NULL;
//
// The partial unique index is a backstop; the conditional CTE alone already
// guarantees at most one open loan per copy.
package postgresengine
