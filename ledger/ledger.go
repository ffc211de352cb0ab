package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Ledger is the write interface of the loan ledger, the sole writer of
// loan-related copy state and of Loan records.
//
// Both operations execute as one atomic unit against the backing store:
// the copy status check and the mutation cannot be interleaved by a
// concurrent caller, so at most one open loan can ever exist per copy.
type Ledger interface {
	// OpenLoan creates a new loan for the copy with DueAt = now + loanPeriod
	// and transitions the copy to StatusReserved.
	// Returns ErrCopyNotFound if the copy does not exist and ErrLoanConflict
	// if the copy already has an open loan.
	OpenLoan(ctx context.Context, copyID uuid.UUID, borrowerID uuid.UUID, loanPeriod time.Duration) (Loan, error)

	// CloseLoan stamps ReturnedAt on the copy's open loan and transitions the
	// copy back to StatusAvailable, clearing borrower and due date.
	// Returns ErrCopyNotFound if the copy does not exist and ErrLoanConflict
	// if no open loan exists for the copy (a double return is rejected, not
	// silently ignored).
	CloseLoan(ctx context.Context, copyID uuid.UUID) (Loan, error)

	// GetOpenLoan returns the copy's open loan or ErrOpenLoanNotFound.
	GetOpenLoan(ctx context.Context, copyID uuid.UUID) (Loan, error)
}

// LoanReader provides read-only projections over the ledger. Projections
// reflect ledger state at call time; there is no caching layer in between.
type LoanReader interface {
	// GetCopyState returns the loan-related state of the copy
	// or ErrCopyNotFound.
	GetCopyState(ctx context.Context, copyID uuid.UUID) (CopyState, error)

	// ListOverdue returns all open loans with DueAt before asOf,
	// ordered by DueAt ascending so the most urgent cases come first.
	ListOverdue(ctx context.Context, asOf time.Time) (Loans, error)

	// ListLoansForUser returns all loans of the user, open and historical,
	// ordered by BorrowedAt descending.
	ListLoansForUser(ctx context.Context, userID uuid.UUID) (Loans, error)
}
