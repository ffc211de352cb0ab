package copyavailability_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/loanledger-go/features/query/copyavailability"
	"github.com/shelftrack/loanledger-go/ledger"
	"github.com/shelftrack/loanledger-go/ledger/memoryengine"
)

func Test_Handle_AvailableCopy(t *testing.T) {
	// arrange
	ctx := context.Background()
	copyID := uuid.New()

	loanLedger := memoryengine.NewLedger()
	loanLedger.AddCopy(copyID)

	handler := copyavailability.NewQueryHandler(loanLedger)

	// act
	result, err := handler.Handle(ctx, copyavailability.BuildQuery(copyID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, copyID.String(), result.CopyID)
	assert.True(t, result.Available)
	assert.True(t, result.DueBack.IsZero(), "an available copy has no due date")
}

func Test_Handle_BorrowedCopy_ReportsDueBack(t *testing.T) {
	// arrange
	ctx := context.Background()
	copyID := uuid.New()
	fakeNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	loanPeriod := 21 * 24 * time.Hour

	loanLedger := memoryengine.NewLedger(memoryengine.WithClock(func() time.Time { return fakeNow }))
	loanLedger.AddCopy(copyID)

	_, err := loanLedger.OpenLoan(ctx, copyID, uuid.New(), loanPeriod)
	require.NoError(t, err)

	handler := copyavailability.NewQueryHandler(loanLedger)

	// act
	result, err := handler.Handle(ctx, copyavailability.BuildQuery(copyID))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, fakeNow.Add(loanPeriod), result.DueBack)
}

func Test_Handle_UnknownCopy(t *testing.T) {
	handler := copyavailability.NewQueryHandler(memoryengine.NewLedger())

	_, err := handler.Handle(context.Background(), copyavailability.BuildQuery(uuid.New()))

	assert.ErrorIs(t, err, ledger.ErrCopyNotFound)
}
