package borrowcopy_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/loanledger-go/catalog"
	"github.com/shelftrack/loanledger-go/catalog/memorystore"
	"github.com/shelftrack/loanledger-go/features/command/borrowcopy"
	"github.com/shelftrack/loanledger-go/identity"
	"github.com/shelftrack/loanledger-go/ledger"
	"github.com/shelftrack/loanledger-go/ledger/memoryengine"
)

func Test_Handle_Success_ReturnsLoanWithPolicyPeriod(t *testing.T) {
	// arrange
	ctx := context.Background()
	copyID := uuid.New()
	borrowerID := uuid.New()
	fakeNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	loanLedger, catalogStore := givenCopyInCatalogAndLedger(t, copyID, fakeNow)
	handler := borrowcopy.NewCommandHandler(loanLedger, catalogStore, identity.NewStaticProvider())

	// act
	loan, err := handler.Handle(ctx, borrowcopy.BuildCommand(copyID, borrowerID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, copyID, loan.CopyID)
	assert.Equal(t, borrowerID, loan.BorrowerID)
	assert.Equal(t, fakeNow.Add(borrowcopy.DefaultLoanPeriod), loan.DueAt, "due date must follow the 3-week policy")
	assert.True(t, loan.IsOpen())
}

func Test_Handle_Fails_WhenBorrowerIsStaff_RegardlessOfCopyState(t *testing.T) {
	// arrange
	ctx := context.Background()
	copyID := uuid.New()
	staffID := uuid.New()

	loanLedger, catalogStore := givenCopyInCatalogAndLedger(t, copyID, time.Now().UTC())
	identityProvider := identity.NewStaticProvider(staffID)
	handler := borrowcopy.NewCommandHandler(loanLedger, catalogStore, identityProvider)

	// act - copy available
	_, err := handler.Handle(ctx, borrowcopy.BuildCommand(copyID, staffID))
	assert.ErrorIs(t, err, borrowcopy.ErrStaffMayNotBorrow)

	// arrange - copy reserved by someone else
	_, err = loanLedger.OpenLoan(ctx, copyID, uuid.New(), borrowcopy.DefaultLoanPeriod)
	require.NoError(t, err)

	// act - copy reserved
	_, err = handler.Handle(ctx, borrowcopy.BuildCommand(copyID, staffID))
	assert.ErrorIs(t, err, borrowcopy.ErrStaffMayNotBorrow)

	// act - copy unknown
	_, err = handler.Handle(ctx, borrowcopy.BuildCommand(uuid.New(), staffID))
	assert.ErrorIs(t, err, borrowcopy.ErrStaffMayNotBorrow, "policy check must come before any lookup")
}

func Test_Handle_Fails_WhenCopyNotInCatalog(t *testing.T) {
	// arrange
	ctx := context.Background()

	loanLedger := memoryengine.NewLedger()
	catalogStore := memorystore.NewStore()
	handler := borrowcopy.NewCommandHandler(loanLedger, catalogStore, identity.NewStaticProvider())

	// act
	_, err := handler.Handle(ctx, borrowcopy.BuildCommand(uuid.New(), uuid.New()))

	// assert
	assert.ErrorIs(t, err, catalog.ErrCopyNotFound)
}

func Test_Handle_Fails_WhenCopyAlreadyBorrowed(t *testing.T) {
	// arrange
	ctx := context.Background()
	copyID := uuid.New()

	loanLedger, catalogStore := givenCopyInCatalogAndLedger(t, copyID, time.Now().UTC())
	handler := borrowcopy.NewCommandHandler(loanLedger, catalogStore, identity.NewStaticProvider())

	_, err := handler.Handle(ctx, borrowcopy.BuildCommand(copyID, uuid.New()))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, borrowcopy.BuildCommand(copyID, uuid.New()))

	// assert
	assert.ErrorIs(t, err, ledger.ErrLoanConflict)
}

func Test_Handle_CustomLoanPeriodOption(t *testing.T) {
	// arrange
	ctx := context.Background()
	copyID := uuid.New()
	fakeNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	customPeriod := 7 * 24 * time.Hour

	loanLedger, catalogStore := givenCopyInCatalogAndLedger(t, copyID, fakeNow)
	handler := borrowcopy.NewCommandHandler(
		loanLedger,
		catalogStore,
		identity.NewStaticProvider(),
		borrowcopy.WithLoanPeriod(customPeriod),
	)

	// act
	loan, err := handler.Handle(ctx, borrowcopy.BuildCommand(copyID, uuid.New()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, fakeNow.Add(customPeriod), loan.DueAt)
}

func givenCopyInCatalogAndLedger(t *testing.T, copyID uuid.UUID, fakeNow time.Time) (*memoryengine.Ledger, *memorystore.Store) {
	t.Helper()

	loanLedger := memoryengine.NewLedger(memoryengine.WithClock(func() time.Time { return fakeNow }))
	loanLedger.AddCopy(copyID)

	catalogStore := memorystore.NewStore()
	catalogStore.PutCopy(catalog.Copy{CopyID: copyID, BookID: uuid.New()})

	return loanLedger, catalogStore
}
