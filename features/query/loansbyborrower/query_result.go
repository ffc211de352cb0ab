package loansbyborrower

import (
	"github.com/shelftrack/loanledger-go/ledger"
)

// BorrowerLoans is the query result: all loans of the user ordered by
// BorrowedAt descending.
type BorrowerLoans struct {
	BorrowerID string
	Loans      ledger.Loans
	Count      int
}
