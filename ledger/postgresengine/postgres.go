package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/shelftrack/loanledger-go/internal/adapters"
	"github.com/shelftrack/loanledger-go/ledger"
)

const (
	defaultCopiesTableName      = "copies"
	defaultLoansTableName       = "loans"
	logMsgBuildQueryFailed      = "failed to build sql query"
	logMsgDBQueryFailed         = "database query execution failed"
	logMsgDBExecFailed          = "database execution failed"
	logMsgCloseRowsFailed       = "failed to close database rows"
	logMsgScanRowFailed         = "failed to scan database row"
	logMsgRowsAffectedFailed    = "failed to get rows affected count"
	logMsgAuditRecordFailed     = "failed to record audit event"
	logMsgLoanOpened            = "loan opened"
	logMsgLoanClosed            = "loan closed"
	logMsgLoanConflict          = "loan conflict detected"
	logMsgSQLExecuted           = "executed sql for: "
	logMsgOperation             = "ledger operation: "
	logAttrError                = "error"
	logAttrQuery                = "query"
	logAttrCopyID               = "copy_id"
	logAttrLoanID               = "loan_id"
	logAttrBorrowerID           = "borrower_id"
	logAttrAction               = "action"
	logAttrDurationMS           = "duration_ms"
	logActionOpenLoan           = "open_loan"
	logActionCloseLoan          = "close_loan"
	logActionQuery              = "query"
	metricOpenLoanDuration      = "ledger.open_loan.duration"
	metricCloseLoanDuration     = "ledger.close_loan.duration"
	metricLoanConflictsTotal    = "ledger.loan_conflicts.total"
	metricLabelAction           = "action"
	colLoanID                   = "loan_id"
	colCopyID                   = "copy_id"
	colBorrowerID               = "borrower_id"
	colBorrowedAt               = "borrowed_at"
	colDueAt                    = "due_at"
	colReturnedAt               = "returned_at"
	colStatus                   = "status"
	colDueBack                  = "due_back"
	cteClaimed                  = "claimed"
	cteClosed                   = "closed"
	dialectPostgres             = "postgres"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// Ledger implements the loan ledger on top of PostgreSQL. It is the sole
// writer of loan-related copy state and supports pgx, database/sql and sqlx
// connections through a database adapter.
type Ledger struct {
	db               adapters.DBAdapter
	copiesTableName  string
	loansTableName   string
	logger           ledger.Logger
	contextualLogger ledger.ContextualLogger
	metrics          ledger.MetricsCollector
	auditSink        ledger.AuditSink
	clock            func() time.Time
}

// Option defines a functional option for configuring a Ledger.
type Option func(*Ledger) error

// WithCopiesTableName sets the table name holding copy state.
func WithCopiesTableName(tableName string) Option {
	return func(l *Ledger) error {
		if tableName == "" {
			return ledger.ErrEmptyCopiesTableName
		}

		l.copiesTableName = tableName

		return nil
	}
}

// WithLoansTableName sets the table name holding loan records.
func WithLoansTableName(tableName string) Option {
	return func(l *Ledger) error {
		if tableName == "" {
			return ledger.ErrEmptyLoansTableName
		}

		l.loansTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Ledger.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Opened/closed loans and conflicts (production-safe)
// Warn level: Non-critical issues like audit sink failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger ledger.Logger) Option {
	return func(l *Ledger) error {
		l.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Ledger.
// It receives the same messages and levels as the plain logger, with the
// operation's context attached for trace correlation. Both loggers may be
// configured at once; each configured one is called.
func WithContextualLogger(logger ledger.ContextualLogger) Option {
	return func(l *Ledger) error {
		l.contextualLogger = logger
		return nil
	}
}

// WithMetricsCollector sets the metrics collector for the Ledger.
func WithMetricsCollector(metrics ledger.MetricsCollector) Option {
	return func(l *Ledger) error {
		l.metrics = metrics
		return nil
	}
}

// WithAuditSink sets the audit sink receiving one event per mutation.
// Recording is best-effort: sink failures are logged at Warn and never
// roll back the business mutation.
func WithAuditSink(sink ledger.AuditSink) Option {
	return func(l *Ledger) error {
		l.auditSink = sink
		return nil
	}
}

// WithClock sets the time source used to stamp loans, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) error {
		l.clock = clock
		return nil
	}
}

// NewLedgerFromPGXPool creates a new Ledger using a pgx Pool with optional configuration.
func NewLedgerFromPGXPool(db *pgxpool.Pool, options ...Option) (Ledger, error) {
	if db == nil {
		return Ledger{}, ledger.ErrNilDatabaseConnection
	}

	return newLedger(adapters.NewPGXAdapter(db), options...)
}

// NewLedgerFromSQLDB creates a new Ledger using a sql.DB with optional configuration.
func NewLedgerFromSQLDB(db *sql.DB, options ...Option) (Ledger, error) {
	if db == nil {
		return Ledger{}, ledger.ErrNilDatabaseConnection
	}

	return newLedger(adapters.NewSQLAdapter(db), options...)
}

// NewLedgerFromSQLX creates a new Ledger using a sqlx.DB with optional configuration.
func NewLedgerFromSQLX(db *sqlx.DB, options ...Option) (Ledger, error) {
	if db == nil {
		return Ledger{}, ledger.ErrNilDatabaseConnection
	}

	return newLedger(adapters.NewSQLXAdapter(db), options...)
}

func newLedger(db adapters.DBAdapter, options ...Option) (Ledger, error) {
	l := Ledger{
		db:              db,
		copiesTableName: defaultCopiesTableName,
		loansTableName:  defaultLoansTableName,
		clock:           time.Now,
	}

	for _, option := range options {
		if err := option(&l); err != nil {
			return Ledger{}, err
		}
	}

	return l, nil
}

// OpenLoan creates a loan for the copy with DueAt = now + loanPeriod and
// transitions the copy to reserved, as one atomic statement.
//
// The copy row is claimed by a conditional UPDATE inside a CTE; the loan row
// is inserted from the claimed row. Zero rows affected means the copy was not
// available: a follow-up lookup distinguishes ledger.ErrCopyNotFound from
// ledger.ErrLoanConflict.
func (l Ledger) OpenLoan(
	ctx context.Context,
	copyID uuid.UUID,
	borrowerID uuid.UUID,
	loanPeriod time.Duration,
) (ledger.Loan, error) {

	var empty ledger.Loan

	now := l.clock().UTC()
	loan := ledger.Loan{
		LoanID:     uuid.New(),
		CopyID:     copyID,
		BorrowerID: borrowerID,
		BorrowedAt: now,
		DueAt:      now.Add(loanPeriod),
	}

	sqlQuery, buildQueryErr := l.buildOpenLoanQuery(ctx, loan)
	if buildQueryErr != nil {
		return empty, buildQueryErr
	}

	rowsAffected, duration, execErr := l.executeMutation(ctx, sqlQuery, logActionOpenLoan)
	if execErr != nil {
		return empty, errors.Join(ledger.ErrOpeningLoanFailed, execErr)
	}

	if rowsAffected == 0 {
		return empty, l.classifyZeroRowsAffected(ctx, copyID, logActionOpenLoan)
	}

	l.logOperation(
		ctx,
		logMsgLoanOpened,
		logAttrLoanID, loan.LoanID.String(),
		logAttrCopyID, copyID.String(),
		logAttrBorrowerID, borrowerID.String(),
		logAttrDurationMS, l.durationToMilliseconds(duration),
	)
	l.recordDuration(metricOpenLoanDuration, duration)
	l.emitAuditEvent(ctx, borrowerID, ledger.AuditActionLoanOpened, copyID, now)

	return loan, nil
}

// CloseLoan stamps ReturnedAt on the copy's open loan and transitions the
// copy back to available, as one atomic statement.
//
// The open loan row is stamped inside a CTE; the copy row is reset from the
// stamped row. No row returned means there was no open loan to close.
func (l Ledger) CloseLoan(ctx context.Context, copyID uuid.UUID) (ledger.Loan, error) {
	var empty ledger.Loan

	now := l.clock().UTC()

	sqlQuery, buildQueryErr := l.buildCloseLoanQuery(ctx, copyID, now)
	if buildQueryErr != nil {
		return empty, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := l.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	l.logQueryWithDuration(ctx, sqlQuery, logActionCloseLoan, duration)

	if queryErr != nil {
		l.logError(ctx, logMsgDBExecFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return empty, errors.Join(ledger.ErrClosingLoanFailed, queryErr)
	}
	defer l.closeRows(ctx, rows)

	loans, scanErr := l.scanLoans(ctx, rows)
	if scanErr != nil {
		return empty, scanErr
	}

	if len(loans) == 0 {
		return empty, l.classifyZeroRowsAffected(ctx, copyID, logActionCloseLoan)
	}

	closedLoan := loans[0]

	l.logOperation(
		ctx,
		logMsgLoanClosed,
		logAttrLoanID, closedLoan.LoanID.String(),
		logAttrCopyID, copyID.String(),
		logAttrDurationMS, l.durationToMilliseconds(duration),
	)
	l.recordDuration(metricCloseLoanDuration, duration)
	l.emitAuditEvent(ctx, closedLoan.BorrowerID, ledger.AuditActionLoanClosed, copyID, now)

	return closedLoan, nil
}

// GetOpenLoan returns the copy's open loan or ledger.ErrOpenLoanNotFound.
func (l Ledger) GetOpenLoan(ctx context.Context, copyID uuid.UUID) (ledger.Loan, error) {
	var empty ledger.Loan

	selectStmt := l.loanSelect().
		Where(
			goqu.Ex{colCopyID: copyID.String()},
			goqu.C(colReturnedAt).IsNull(),
		)

	loans, err := l.queryLoans(ctx, selectStmt)
	if err != nil {
		return empty, err
	}

	if len(loans) == 0 {
		return empty, ledger.ErrOpenLoanNotFound
	}

	return loans[0], nil
}

// GetCopyState returns the loan-related state of the copy or ledger.ErrCopyNotFound.
func (l Ledger) GetCopyState(ctx context.Context, copyID uuid.UUID) (ledger.CopyState, error) {
	var empty ledger.CopyState

	selectStmt := goqu.Dialect(dialectPostgres).
		From(l.copiesTableName).
		Select(colStatus, colBorrowerID, colDueBack).
		Where(goqu.Ex{colCopyID: copyID.String()})

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		l.logError(ctx, logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		return empty, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, _, queryErr := l.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return empty, queryErr
	}
	defer l.closeRows(ctx, rows)

	if !rows.Next() {
		return empty, ledger.ErrCopyNotFound
	}

	var status string
	var borrowerID sql.NullString
	var dueBack sql.NullTime

	if scanErr := rows.Scan(&status, &borrowerID, &dueBack); scanErr != nil {
		l.logError(ctx, logMsgScanRowFailed, logAttrError, scanErr.Error())
		return empty, errors.Join(ledger.ErrScanningDBRowFailed, scanErr)
	}

	state := ledger.CopyState{
		CopyID: copyID,
		Status: ledger.CopyStatus(status),
	}

	if borrowerID.Valid {
		parsed, parseErr := uuid.Parse(borrowerID.String)
		if parseErr != nil {
			return empty, errors.Join(ledger.ErrScanningDBRowFailed, parseErr)
		}
		state.BorrowerID = parsed
	}

	if dueBack.Valid {
		state.DueBack = dueBack.Time
	}

	return state, nil
}

// ListOverdue returns all open loans with DueAt before asOf, ordered by
// DueAt ascending so the most urgent cases come first.
func (l Ledger) ListOverdue(ctx context.Context, asOf time.Time) (ledger.Loans, error) {
	selectStmt := l.loanSelect().
		Where(
			goqu.C(colReturnedAt).IsNull(),
			goqu.C(colDueAt).Lt(asOf.UTC()),
		).
		Order(goqu.I(colDueAt).Asc())

	return l.queryLoans(ctx, selectStmt)
}

// ListLoansForUser returns all loans of the user, open and historical,
// ordered by BorrowedAt descending.
func (l Ledger) ListLoansForUser(ctx context.Context, userID uuid.UUID) (ledger.Loans, error) {
	selectStmt := l.loanSelect().
		Where(goqu.Ex{colBorrowerID: userID.String()}).
		Order(goqu.I(colBorrowedAt).Desc())

	return l.queryLoans(ctx, selectStmt)
}

func (l Ledger) buildOpenLoanQuery(ctx context.Context, loan ledger.Loan) (sqlQueryString, error) {
	builder := goqu.Dialect(dialectPostgres)

	// Claim the copy row only if it is still available.
	claimStmt := builder.
		Update(l.copiesTableName).
		Set(goqu.Record{
			colStatus:     string(ledger.StatusReserved),
			colBorrowerID: loan.BorrowerID.String(),
			colDueBack:    loan.DueAt,
		}).
		Where(goqu.Ex{
			colCopyID: loan.CopyID.String(),
			colStatus: string(ledger.StatusAvailable),
		}).
		Returning(colCopyID)

	claimSQL, _, claimErr := claimStmt.ToSQL()
	if claimErr != nil {
		l.logError(ctx, logMsgBuildQueryFailed, logAttrError, claimErr.Error())
		return "", errors.Join(ledger.ErrBuildingQueryFailed, claimErr)
	}

	// Insert the loan row from the claimed copy; with no claimed row
	// nothing is inserted and rows affected is zero.
	insertStmt := builder.
		Insert(l.loansTableName).
		Cols(colLoanID, colCopyID, colBorrowerID, colBorrowedAt, colDueAt).
		FromQuery(
			builder.From(cteClaimed).
				Select(
					goqu.V(loan.LoanID.String()),
					goqu.C(colCopyID),
					goqu.V(loan.BorrowerID.String()),
					goqu.V(loan.BorrowedAt),
					goqu.V(loan.DueAt),
				),
		)

	insertSQL, _, insertErr := insertStmt.ToSQL()
	if insertErr != nil {
		l.logError(ctx, logMsgBuildQueryFailed, logAttrError, insertErr.Error())
		return "", errors.Join(ledger.ErrBuildingQueryFailed, insertErr)
	}

	return fmt.Sprintf("WITH %s AS (%s) %s", cteClaimed, claimSQL, insertSQL), nil
}

func (l Ledger) buildCloseLoanQuery(ctx context.Context, copyID uuid.UUID, returnedAt time.Time) (sqlQueryString, error) {
	builder := goqu.Dialect(dialectPostgres)

	// Stamp the open loan row, if any. The subquery keeps the stamp from
	// landing when the copy row itself is gone, so an error result never
	// leaves a persisted side effect behind.
	closeStmt := builder.
		Update(l.loansTableName).
		Set(goqu.Record{colReturnedAt: returnedAt}).
		Where(
			goqu.Ex{colCopyID: copyID.String()},
			goqu.C(colReturnedAt).IsNull(),
			goqu.C(colCopyID).In(
				builder.From(l.copiesTableName).
					Select(colCopyID).
					Where(goqu.Ex{colCopyID: copyID.String()}),
			),
		).
		Returning(colLoanID, colCopyID, colBorrowerID, colBorrowedAt, colDueAt, colReturnedAt)

	closeSQL, _, closeErr := closeStmt.ToSQL()
	if closeErr != nil {
		l.logError(ctx, logMsgBuildQueryFailed, logAttrError, closeErr.Error())
		return "", errors.Join(ledger.ErrBuildingQueryFailed, closeErr)
	}

	// Reset the copy row from the stamped loan; with no stamped row the
	// copy stays untouched and no row is returned.
	resetStmt := builder.
		Update(l.copiesTableName).
		Set(goqu.Record{
			colStatus:     string(ledger.StatusAvailable),
			colBorrowerID: nil,
			colDueBack:    nil,
		}).
		From(cteClosed).
		Where(goqu.I(l.copiesTableName + "." + colCopyID).Eq(goqu.I(cteClosed + "." + colCopyID))).
		Returning(
			goqu.I(cteClosed+"."+colLoanID),
			goqu.I(cteClosed+"."+colCopyID),
			goqu.I(cteClosed+"."+colBorrowerID),
			goqu.I(cteClosed+"."+colBorrowedAt),
			goqu.I(cteClosed+"."+colDueAt),
			goqu.I(cteClosed+"."+colReturnedAt),
		)

	resetSQL, _, resetErr := resetStmt.ToSQL()
	if resetErr != nil {
		l.logError(ctx, logMsgBuildQueryFailed, logAttrError, resetErr.Error())
		return "", errors.Join(ledger.ErrBuildingQueryFailed, resetErr)
	}

	return fmt.Sprintf("WITH %s AS (%s) %s", cteClosed, closeSQL, resetSQL), nil
}

// classifyZeroRowsAffected distinguishes a missing copy from a real conflict
// after a mutation affected no rows.
func (l Ledger) classifyZeroRowsAffected(ctx context.Context, copyID uuid.UUID, action string) error {
	_, lookupErr := l.GetCopyState(ctx, copyID)
	if errors.Is(lookupErr, ledger.ErrCopyNotFound) {
		return ledger.ErrCopyNotFound
	}

	if lookupErr != nil {
		return lookupErr
	}

	l.logOperation(ctx, logMsgLoanConflict, logAttrCopyID, copyID.String(), logAttrAction, action)
	l.incrementCounter(metricLoanConflictsTotal, action)

	return ledger.ErrLoanConflict
}

// executeMutation executes a mutation statement and returns rows affected with timing.
func (l Ledger) executeMutation(ctx context.Context, sqlQuery string, action string) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	tag, execErr := l.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	l.logQueryWithDuration(ctx, sqlQuery, action, duration)

	if execErr != nil {
		l.logError(ctx, logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return 0, duration, execErr
	}

	rowsAffected, rowsAffectedErr := tag.RowsAffected()
	if rowsAffectedErr != nil {
		l.logError(ctx, logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		return 0, duration, errors.Join(ledger.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

// executeQuery executes a select statement and returns rows with timing.
func (l Ledger) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	queryDuration,
	error,
) {

	start := time.Now()
	rows, queryErr := l.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	l.logQueryWithDuration(ctx, sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		l.logError(ctx, logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, duration, errors.Join(ledger.ErrQueryingLedgerFailed, queryErr)
	}

	return rows, duration, nil
}

func (l Ledger) loanSelect() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From(l.loansTableName).
		Select(colLoanID, colCopyID, colBorrowerID, colBorrowedAt, colDueAt, colReturnedAt)
}

func (l Ledger) queryLoans(ctx context.Context, selectStmt *goqu.SelectDataset) (ledger.Loans, error) {
	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		l.logError(ctx, logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())
		return nil, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, _, queryErr := l.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer l.closeRows(ctx, rows)

	return l.scanLoans(ctx, rows)
}

// scanLoans converts result rows into loan records.
func (l Ledger) scanLoans(ctx context.Context, rows adapters.DBRows) (ledger.Loans, error) {
	loans := make(ledger.Loans, 0)

	for rows.Next() {
		var loanID, copyID, borrowerID string
		var borrowedAt, dueAt time.Time
		var returnedAt sql.NullTime

		if scanErr := rows.Scan(&loanID, &copyID, &borrowerID, &borrowedAt, &dueAt, &returnedAt); scanErr != nil {
			l.logError(ctx, logMsgScanRowFailed, logAttrError, scanErr.Error())
			return nil, errors.Join(ledger.ErrScanningDBRowFailed, scanErr)
		}

		loan, buildErr := buildLoanFromRow(loanID, copyID, borrowerID, borrowedAt, dueAt, returnedAt)
		if buildErr != nil {
			l.logError(ctx, logMsgScanRowFailed, logAttrError, buildErr.Error())
			return nil, errors.Join(ledger.ErrScanningDBRowFailed, buildErr)
		}

		loans = append(loans, loan)
	}

	return loans, nil
}

func buildLoanFromRow(
	loanID string,
	copyID string,
	borrowerID string,
	borrowedAt time.Time,
	dueAt time.Time,
	returnedAt sql.NullTime,
) (ledger.Loan, error) {

	parsedLoanID, err := uuid.Parse(loanID)
	if err != nil {
		return ledger.Loan{}, err
	}

	parsedCopyID, err := uuid.Parse(copyID)
	if err != nil {
		return ledger.Loan{}, err
	}

	parsedBorrowerID, err := uuid.Parse(borrowerID)
	if err != nil {
		return ledger.Loan{}, err
	}

	loan := ledger.Loan{
		LoanID:     parsedLoanID,
		CopyID:     parsedCopyID,
		BorrowerID: parsedBorrowerID,
		BorrowedAt: borrowedAt,
		DueAt:      dueAt,
	}

	if returnedAt.Valid {
		loan.ReturnedAt = returnedAt.Time
	}

	return loan, nil
}

// emitAuditEvent records an audit event for a completed mutation, best-effort.
func (l Ledger) emitAuditEvent(
	ctx context.Context,
	actorID uuid.UUID,
	action string,
	subjectID uuid.UUID,
	occurredAt time.Time,
) {

	if l.auditSink == nil {
		return
	}

	event := ledger.BuildAuditEvent(actorID, action, subjectID, occurredAt)

	if recordErr := l.auditSink.Record(ctx, event); recordErr != nil {
		l.logWarn(ctx, logMsgAuditRecordFailed, logAttrError, recordErr.Error(), logAttrAction, action)
	}
}

// closeRows safely closes database rows and logs any errors.
func (l Ledger) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		l.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level
// on every configured logger.
func (l Ledger) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	if l.logger != nil {
		l.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, l.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}

	if l.contextualLogger != nil {
		l.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, logAttrDurationMS, l.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level on every configured logger.
func (l Ledger) logOperation(ctx context.Context, action string, args ...any) {
	if l.logger != nil {
		l.logger.Info(logMsgOperation+action, args...)
	}

	if l.contextualLogger != nil {
		l.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (l Ledger) logWarn(ctx context.Context, msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}

	if l.contextualLogger != nil {
		l.contextualLogger.WarnContext(ctx, msg, args...)
	}
}

func (l Ledger) logError(ctx context.Context, msg string, args ...any) {
	if l.logger != nil {
		l.logger.Error(msg, args...)
	}

	if l.contextualLogger != nil {
		l.contextualLogger.ErrorContext(ctx, msg, args...)
	}
}

func (l Ledger) recordDuration(metric string, duration time.Duration) {
	if l.metrics != nil {
		l.metrics.RecordDuration(metric, duration, nil)
	}
}

func (l Ledger) incrementCounter(metric string, action string) {
	if l.metrics != nil {
		l.metrics.IncrementCounter(metric, map[string]string{metricLabelAction: action})
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (l Ledger) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

var _ ledger.Ledger = Ledger{}
var _ ledger.LoanReader = Ledger{}
