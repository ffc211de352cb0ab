package borrowcopy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shelftrack/loanledger-go/catalog"
	"github.com/shelftrack/loanledger-go/ledger"
)

// DefaultLoanPeriod is the fixed borrowing policy: copies go out for 3 weeks.
const DefaultLoanPeriod = 21 * 24 * time.Hour

// ErrStaffMayNotBorrow is returned when the borrower belongs to a staff or
// manager role. It is a policy violation, surfaced as an authorization
// failure by the presentation layer.
var ErrStaffMayNotBorrow = errors.New("staff accounts do not borrow copies")

// ErrCheckingStaffRoleFailed wraps identity provider failures during the
// staff policy check.
var ErrCheckingStaffRoleFailed = errors.New("checking staff role failed")

// Ledger defines the interface needed by the CommandHandler for ledger operations.
type Ledger interface {
	OpenLoan(ctx context.Context, copyID uuid.UUID, borrowerID uuid.UUID, loanPeriod time.Duration) (ledger.Loan, error)
}

// CatalogStore defines the interface needed by the CommandHandler for catalog lookups.
type CatalogStore interface {
	GetCopy(ctx context.Context, copyID uuid.UUID) (catalog.Copy, error)
}

// IdentityProvider defines the interface needed by the CommandHandler for role checks.
type IdentityProvider interface {
	IsStaff(ctx context.Context, userID uuid.UUID) (bool, error)
}

// CommandHandler orchestrates the borrow workflow: policy check, catalog
// lookup, then the atomic OpenLoan on the ledger. Conflict and not-found
// errors from the ledger propagate unchanged to the caller; they are
// business-rule violations, not transient faults, so there is no retry.
type CommandHandler struct {
	ledger     Ledger
	catalog    CatalogStore
	identity   IdentityProvider
	loanPeriod time.Duration
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithLoanPeriod overrides the default loan period policy.
func WithLoanPeriod(loanPeriod time.Duration) Option {
	return func(h *CommandHandler) {
		h.loanPeriod = loanPeriod
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(loanLedger Ledger, catalogStore CatalogStore, identityProvider IdentityProvider, opts ...Option) CommandHandler {
	handler := CommandHandler{
		ledger:     loanLedger,
		catalog:    catalogStore,
		identity:   identityProvider,
		loanPeriod: DefaultLoanPeriod,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the borrow workflow and returns the new loan on success.
//
// Failure modes:
//   - ErrStaffMayNotBorrow when the borrower is staff, regardless of copy state
//   - catalog.ErrCopyNotFound when the copy is not in the catalog
//   - ledger.ErrCopyNotFound / ledger.ErrLoanConflict from OpenLoan
func (h CommandHandler) Handle(ctx context.Context, command Command) (ledger.Loan, error) {
	var empty ledger.Loan

	isStaff, staffErr := h.identity.IsStaff(ctx, command.BorrowerID)
	if staffErr != nil {
		return empty, errors.Join(ErrCheckingStaffRoleFailed, staffErr)
	}

	if isStaff {
		return empty, ErrStaffMayNotBorrow
	}

	if _, copyErr := h.catalog.GetCopy(ctx, command.CopyID); copyErr != nil {
		return empty, copyErr
	}

	loan, openErr := h.ledger.OpenLoan(ctx, command.CopyID, command.BorrowerID, h.loanPeriod)
	if openErr != nil {
		return empty, openErr
	}

	return loan, nil
}
