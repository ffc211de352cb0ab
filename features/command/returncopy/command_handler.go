package returncopy

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelftrack/loanledger-go/ledger"
)

// Ledger defines the interface needed by the CommandHandler for ledger operations.
type Ledger interface {
	CloseLoan(ctx context.Context, copyID uuid.UUID) (ledger.Loan, error)
}

// CommandHandler delegates the return to the ledger's atomic CloseLoan.
// Conflict and not-found errors propagate unchanged to the caller.
type CommandHandler struct {
	ledger Ledger
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(loanLedger Ledger) CommandHandler {
	return CommandHandler{ledger: loanLedger}
}

// Handle executes the return workflow and returns the closed loan on success.
//
// Failure modes:
//   - ledger.ErrCopyNotFound when the copy does not exist
//   - ledger.ErrLoanConflict when no open loan exists for the copy
func (h CommandHandler) Handle(ctx context.Context, command Command) (ledger.Loan, error) {
	closedLoan, closeErr := h.ledger.CloseLoan(ctx, command.CopyID)
	if closeErr != nil {
		return ledger.Loan{}, closeErr
	}

	return closedLoan, nil
}
