package overdueloans

import (
	"time"

	"github.com/shelftrack/loanledger-go/ledger"
)

// OverdueLoans is the query result: all open loans with DueAt before AsOf,
// ordered by DueAt ascending so the most urgent cases come first.
type OverdueLoans struct {
	AsOf  time.Time
	Loans ledger.Loans
	Count int
}
