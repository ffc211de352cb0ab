package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Loans is an alias type for a slice of Loan.
type Loans = []Loan

// Loan is an immutable historical record of one borrow event for a copy.
//
// While its properties are exported, it should only be constructed by a
// ledger engine; ReturnedAt stays the zero value while the loan is open
// and is stamped exactly once when the copy is returned.
type Loan struct {
	LoanID     uuid.UUID
	CopyID     uuid.UUID
	BorrowerID uuid.UUID
	BorrowedAt time.Time
	DueAt      time.Time
	ReturnedAt time.Time
}

// IsOpen reports whether the loan has not been returned yet.
func (l Loan) IsOpen() bool {
	return l.ReturnedAt.IsZero()
}

// IsOverdueAsOf reports whether the loan is open and its due date has passed
// as of the given reference time. A returned loan is never overdue.
func (l Loan) IsOverdueAsOf(asOf time.Time) bool {
	return l.IsOpen() && asOf.After(l.DueAt)
}
