package overdueloans_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/loanledger-go/features/query/overdueloans"
	"github.com/shelftrack/loanledger-go/ledger/memoryengine"
)

func Test_Handle_ReturnsOverdueLoansOrderedByDueDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	loanLedger := memoryengine.NewLedger()

	overdueMay := openLoanDueAt(t, loanLedger, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	openLoanDueAt(t, loanLedger, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	overdueApril := openLoanDueAt(t, loanLedger, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	handler := overdueloans.NewQueryHandler(loanLedger)

	// act
	result, err := handler.Handle(ctx, overdueloans.BuildQuery(asOf))

	// assert
	require.NoError(t, err)
	assert.Equal(t, asOf, result.AsOf)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, overdueApril, result.Loans[0].LoanID, "oldest due date comes first")
	assert.Equal(t, overdueMay, result.Loans[1].LoanID)
}

func Test_Handle_NoOverdueLoans(t *testing.T) {
	// arrange
	ctx := context.Background()

	loanLedger := memoryengine.NewLedger()
	openLoanDueAt(t, loanLedger, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	handler := overdueloans.NewQueryHandler(loanLedger)

	// act
	result, err := handler.Handle(ctx, overdueloans.BuildQuery(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	// assert
	require.NoError(t, err)
	assert.Zero(t, result.Count)
	assert.Empty(t, result.Loans)
}

func openLoanDueAt(t *testing.T, loanLedger *memoryengine.Ledger, dueAt time.Time) uuid.UUID {
	t.Helper()

	copyID := uuid.New()
	loanLedger.AddCopy(copyID)

	loan, err := loanLedger.OpenLoan(context.Background(), copyID, uuid.New(), time.Until(dueAt))
	require.NoError(t, err)
	require.WithinDuration(t, dueAt, loan.DueAt, time.Second)

	return loan.LoanID
}
