package ledger

import (
	"errors"
)

var ErrNilDatabaseConnection = errors.New("nil database connection supplied")
var ErrEmptyCopiesTableName = errors.New("empty copies table name supplied")
var ErrEmptyLoansTableName = errors.New("empty loans table name supplied")

// ErrCopyNotFound is returned when the referenced copy does not exist.
var ErrCopyNotFound = errors.New("copy does not exist")

// ErrOpenLoanNotFound is returned when no open loan exists for the referenced copy.
var ErrOpenLoanNotFound = errors.New("no open loan exists for this copy")

// ErrLoanConflict is returned when a state transition is not allowed:
// borrowing a copy that is not available, or returning a copy with no open loan.
// Exactly one of two concurrent borrow attempts for the same copy receives it.
var ErrLoanConflict = errors.New("loan conflict, the copy state did not allow this transition")

var ErrBuildingQueryFailed = errors.New("building sql query failed")
var ErrQueryingLedgerFailed = errors.New("querying the ledger failed")
var ErrOpeningLoanFailed = errors.New("opening the loan failed")
var ErrClosingLoanFailed = errors.New("closing the loan failed")
var ErrScanningDBRowFailed = errors.New("scanning database row failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected count failed")
