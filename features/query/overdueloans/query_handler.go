package overdueloans

import (
	"context"
	"time"

	"github.com/shelftrack/loanledger-go/ledger"
)

// LoanReader defines the interface needed by the QueryHandler for ledger reads.
type LoanReader interface {
	ListOverdue(ctx context.Context, asOf time.Time) (ledger.Loans, error)
}

// QueryHandler lists overdue loans from the ledger.
type QueryHandler struct {
	reader LoanReader
}

// NewQueryHandler creates a new QueryHandler with the provided LoanReader dependency.
func NewQueryHandler(reader LoanReader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle returns all loans overdue as of the query's reference date.
func (h QueryHandler) Handle(ctx context.Context, query Query) (OverdueLoans, error) {
	loans, err := h.reader.ListOverdue(ctx, query.AsOf)
	if err != nil {
		return OverdueLoans{}, err
	}

	return OverdueLoans{
		AsOf:  query.AsOf,
		Loans: loans,
		Count: len(loans),
	}, nil
}
