package postgresengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/loanledger-go/ledger"
	"github.com/shelftrack/loanledger-go/ledger/postgresengine"
	"github.com/shelftrack/loanledger-go/testutil/postgreswrapper"
)

const loanPeriod = 21 * 24 * time.Hour

func Test_NewLedger_Fails_WithNilConnection(t *testing.T) {
	_, err := postgresengine.NewLedgerFromPGXPool(nil)
	assert.ErrorIs(t, err, ledger.ErrNilDatabaseConnection)

	_, err = postgresengine.NewLedgerFromSQLDB(nil)
	assert.ErrorIs(t, err, ledger.ErrNilDatabaseConnection)

	_, err = postgresengine.NewLedgerFromSQLX(nil)
	assert.ErrorIs(t, err, ledger.ErrNilDatabaseConnection)
}

func Test_OpenLoan_Success(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()
	copyID := uuid.New()
	borrowerID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	// act
	loan, err := ledgerEngine.OpenLoan(ctx, copyID, borrowerID, loanPeriod)

	// assert
	require.NoError(t, err)
	assert.Equal(t, copyID, loan.CopyID)
	assert.Equal(t, borrowerID, loan.BorrowerID)
	assert.True(t, loan.IsOpen())
	assert.Equal(t, loan.BorrowedAt.Add(loanPeriod), loan.DueAt)

	state, err := ledgerEngine.GetCopyState(ctx, copyID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusReserved, state.Status)
	assert.Equal(t, borrowerID, state.BorrowerID)
}

func Test_OpenLoan_Fails_WhenCopyDoesNotExist(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	// act
	_, err := wrapper.GetLedger().OpenLoan(ctx, uuid.New(), uuid.New(), loanPeriod)

	// assert
	assert.ErrorIs(t, err, ledger.ErrCopyNotFound)
}

func Test_OpenLoan_Fails_WhenCopyAlreadyReserved(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()
	copyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	_, err := ledgerEngine.OpenLoan(ctx, copyID, uuid.New(), loanPeriod)
	require.NoError(t, err)

	// act
	_, err = ledgerEngine.OpenLoan(ctx, copyID, uuid.New(), loanPeriod)

	// assert
	assert.ErrorIs(t, err, ledger.ErrLoanConflict)
}

func Test_CloseLoan_Success(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()
	copyID := uuid.New()
	borrowerID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	openedLoan, err := ledgerEngine.OpenLoan(ctx, copyID, borrowerID, loanPeriod)
	require.NoError(t, err)

	// act
	closedLoan, err := ledgerEngine.CloseLoan(ctx, copyID)

	// assert
	require.NoError(t, err)
	assert.Equal(t, openedLoan.LoanID, closedLoan.LoanID)
	assert.Equal(t, borrowerID, closedLoan.BorrowerID)
	assert.False(t, closedLoan.IsOpen())

	state, err := ledgerEngine.GetCopyState(ctx, copyID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusAvailable, state.Status)
	assert.Equal(t, uuid.Nil, state.BorrowerID)
	assert.True(t, state.DueBack.IsZero())
}

func Test_CloseLoan_Fails_WhenNoOpenLoanExists(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	copyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	// act
	_, err := wrapper.GetLedger().CloseLoan(ctx, copyID)

	// assert
	assert.ErrorIs(t, err, ledger.ErrLoanConflict)
}

func Test_CloseLoan_Fails_WhenCopyDoesNotExist(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	// act
	_, err := wrapper.GetLedger().CloseLoan(ctx, uuid.New())

	// assert
	assert.ErrorIs(t, err, ledger.ErrCopyNotFound)
}

func Test_GetOpenLoan_RoundTrip(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()
	copyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	openedLoan, err := ledgerEngine.OpenLoan(ctx, copyID, uuid.New(), loanPeriod)
	require.NoError(t, err)

	// act
	foundLoan, err := ledgerEngine.GetOpenLoan(ctx, copyID)

	// assert
	require.NoError(t, err)
	assert.Equal(t, openedLoan.LoanID, foundLoan.LoanID)

	// act - after returning, there is no open loan anymore
	_, err = ledgerEngine.CloseLoan(ctx, copyID)
	require.NoError(t, err)

	_, err = ledgerEngine.GetOpenLoan(ctx, copyID)

	// assert
	assert.ErrorIs(t, err, ledger.ErrOpenLoanNotFound)
}

func Test_ListOverdue_OrdersByDueDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	fakeNow := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(
		t,
		postgresengine.WithClock(func() time.Time { return fakeNow }),
	)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()

	longOverdue := openLoanWithPeriod(t, wrapper, 7*24*time.Hour)
	justOverdue := openLoanWithPeriod(t, wrapper, 30*24*time.Hour)
	openLoanWithPeriod(t, wrapper, 90*24*time.Hour)

	asOf := fakeNow.Add(45 * 24 * time.Hour)

	// act
	overdue, err := ledgerEngine.ListOverdue(ctx, asOf)

	// assert
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, longOverdue, overdue[0].LoanID, "oldest due date comes first")
	assert.Equal(t, justOverdue, overdue[1].LoanID)
}

func Test_ListLoansForUser_OrdersMostRecentFirst(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()
	borrowerID := uuid.New()

	firstCopyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, firstCopyID)
	firstLoan, err := ledgerEngine.OpenLoan(ctx, firstCopyID, borrowerID, loanPeriod)
	require.NoError(t, err)

	secondCopyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, secondCopyID)
	secondLoan, err := ledgerEngine.OpenLoan(ctx, secondCopyID, borrowerID, loanPeriod)
	require.NoError(t, err)

	// a loan of somebody else must not show up
	otherCopyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, otherCopyID)
	_, err = ledgerEngine.OpenLoan(ctx, otherCopyID, uuid.New(), loanPeriod)
	require.NoError(t, err)

	// act
	loans, err := ledgerEngine.ListLoansForUser(ctx, borrowerID)

	// assert
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, secondLoan.LoanID, loans[0].LoanID)
	assert.Equal(t, firstLoan.LoanID, loans[1].LoanID)
}

func Test_WithContextualLogger_LogsOperations(t *testing.T) {
	// arrange
	ctx := context.Background()
	contextualLogger := &recordingContextualLogger{}
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(
		t,
		postgresengine.WithContextualLogger(contextualLogger),
	)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	copyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	// act
	_, err := wrapper.GetLedger().OpenLoan(ctx, copyID, uuid.New(), loanPeriod)

	// assert
	require.NoError(t, err)
	assert.Contains(t, contextualLogger.debugMsgs, "executed sql for: open_loan")
	assert.Contains(t, contextualLogger.infoMsgs, "ledger operation: loan opened")
}

func Test_CloseLoan_LeavesLoanUntouched_WhenCopyRowDeleted(t *testing.T) {
	// arrange
	ctx := context.Background()
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()
	postgreswrapper.CleanUp(t, wrapper)

	ledgerEngine := wrapper.GetLedger()
	copyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	openedLoan, err := ledgerEngine.OpenLoan(ctx, copyID, uuid.New(), loanPeriod)
	require.NoError(t, err)

	wrapper.Exec(t, "DELETE FROM copies WHERE copy_id = $1", copyID.String())

	// act
	_, err = ledgerEngine.CloseLoan(ctx, copyID)

	// assert - the error path must not stamp the loan as returned
	assert.ErrorIs(t, err, ledger.ErrCopyNotFound)

	foundLoan, err := ledgerEngine.GetOpenLoan(ctx, copyID)
	require.NoError(t, err)
	assert.Equal(t, openedLoan.LoanID, foundLoan.LoanID)
	assert.True(t, foundLoan.IsOpen())
}

func openLoanWithPeriod(t *testing.T, wrapper postgreswrapper.Wrapper, period time.Duration) uuid.UUID {
	t.Helper()

	copyID := uuid.New()
	postgreswrapper.SeedAvailableCopy(t, wrapper, copyID)

	loan, err := wrapper.GetLedger().OpenLoan(context.Background(), copyID, uuid.New(), period)
	require.NoError(t, err)

	return loan.LoanID
}

// recordingContextualLogger captures messages per level for assertions.
type recordingContextualLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (l *recordingContextualLogger) DebugContext(_ context.Context, msg string, _ ...any) {
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *recordingContextualLogger) InfoContext(_ context.Context, msg string, _ ...any) {
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *recordingContextualLogger) WarnContext(_ context.Context, msg string, _ ...any) {
	l.warnMsgs = append(l.warnMsgs, msg)
}

func (l *recordingContextualLogger) ErrorContext(_ context.Context, msg string, _ ...any) {
	l.errorMsgs = append(l.errorMsgs, msg)
}
