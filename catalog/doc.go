// Package catalog defines the catalog records (books, authors, copies) and
// the read-only Store interface the loan lifecycle engine consumes. The
// catalog owns all descriptive copy and book fields; the loan-related copy
// state (status, borrower, due date) is owned by the ledger and never
// written through the catalog.
package catalog
