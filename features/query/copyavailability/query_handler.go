package copyavailability

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/loanledger-go/ledger"
)

// LoanReader defines the interface needed by the QueryHandler for ledger reads.
type LoanReader interface {
	GetCopyState(ctx context.Context, copyID uuid.UUID) (ledger.CopyState, error)
}

// QueryHandler answers availability questions from the ledger's copy state.
type QueryHandler struct {
	reader LoanReader
}

// NewQueryHandler creates a new QueryHandler with the provided LoanReader dependency.
func NewQueryHandler(reader LoanReader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle returns the availability of the copy, or ledger.ErrCopyNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (CopyAvailability, error) {
	state, err := h.reader.GetCopyState(ctx, query.CopyID)
	if err != nil {
		return CopyAvailability{}, err
	}

	return CopyAvailability{
		CopyID:    state.CopyID.String(),
		Available: state.IsAvailable(),
		DueBack:   state.DueBack,
	}, nil
}
