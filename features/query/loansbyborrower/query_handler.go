package loansbyborrower

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/loanledger-go/ledger"
)

// LoanReader defines the interface needed by the QueryHandler for ledger reads.
type LoanReader interface {
	ListLoansForUser(ctx context.Context, userID uuid.UUID) (ledger.Loans, error)
}

// QueryHandler lists a user's loans from the ledger.
type QueryHandler struct {
	reader LoanReader
}

// NewQueryHandler creates a new QueryHandler with the provided LoanReader dependency.
func NewQueryHandler(reader LoanReader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle returns all loans of the user, open and historical.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowerLoans, error) {
	loans, err := h.reader.ListLoansForUser(ctx, query.BorrowerID)
	if err != nil {
		return BorrowerLoans{}, err
	}

	return BorrowerLoans{
		BorrowerID: query.BorrowerID.String(),
		Loans:      loans,
		Count:      len(loans),
	}, nil
}
