package ledger

import (
	"time"

	"github.com/google/uuid"
)

// CopyStatus is the availability status of a physical book copy.
type CopyStatus string

const (
	// StatusAvailable means the copy can be borrowed.
	StatusAvailable CopyStatus = "available"
	// StatusReserved means the copy is currently out on an open loan.
	StatusReserved CopyStatus = "reserved"
)

// CopyState is the loan-related state of a physical book copy, owned
// exclusively by the ledger. BorrowerID and DueBack hold their zero values
// exactly when Status is StatusAvailable.
type CopyState struct {
	CopyID     uuid.UUID
	Status     CopyStatus
	BorrowerID uuid.UUID
	DueBack    time.Time
}

// IsAvailable reports whether the copy can be borrowed right now.
func (s CopyState) IsAvailable() bool {
	return s.Status == StatusAvailable
}
