package memoryengine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/shelftrack/loanledger-go/ledger"
)

const (
	logMsgAuditRecordFailed = "failed to record audit event"
	logAttrError            = "error"
	logAttrAction           = "action"
)

// Ledger implements the loan ledger in memory, guarded by a RWMutex.
// Copies must be registered with AddCopy before they can be borrowed;
// catalog management owns copy creation and deletion.
type Ledger struct {
	mu        sync.RWMutex
	copies    map[uuid.UUID]ledger.CopyState
	loans     []ledger.Loan
	openLoans map[uuid.UUID]int // copy id -> index into loans
	logger    ledger.Logger
	auditSink ledger.AuditSink
	clock     func() time.Time
}

// Option defines a functional option for configuring a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger for the Ledger.
func WithLogger(logger ledger.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithAuditSink sets the audit sink receiving one event per mutation.
func WithAuditSink(sink ledger.AuditSink) Option {
	return func(l *Ledger) {
		l.auditSink = sink
	}
}

// WithClock sets the time source used to stamp loans, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) {
		l.clock = clock
	}
}

// NewLedger creates a new in-memory Ledger with optional configuration.
func NewLedger(options ...Option) *Ledger {
	l := &Ledger{
		copies:    make(map[uuid.UUID]ledger.CopyState),
		openLoans: make(map[uuid.UUID]int),
		clock:     time.Now,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// AddCopy registers a copy as available. It is a no-op when the copy
// already exists, so seeding is idempotent.
func (l *Ledger) AddCopy(copyID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.copies[copyID]; exists {
		return
	}

	l.copies[copyID] = ledger.CopyState{
		CopyID: copyID,
		Status: ledger.StatusAvailable,
	}
}

// OpenLoan creates a loan for the copy and transitions it to reserved.
// The status check and the mutation happen under one write lock, so of two
// concurrent calls for the same copy exactly one succeeds.
func (l *Ledger) OpenLoan(
	ctx context.Context,
	copyID uuid.UUID,
	borrowerID uuid.UUID,
	loanPeriod time.Duration,
) (ledger.Loan, error) {

	var empty ledger.Loan

	l.mu.Lock()

	state, exists := l.copies[copyID]
	if !exists {
		l.mu.Unlock()
		return empty, ledger.ErrCopyNotFound
	}

	if state.Status != ledger.StatusAvailable {
		l.mu.Unlock()
		return empty, ledger.ErrLoanConflict
	}

	now := l.clock().UTC()
	loan := ledger.Loan{
		LoanID:     uuid.New(),
		CopyID:     copyID,
		BorrowerID: borrowerID,
		BorrowedAt: now,
		DueAt:      now.Add(loanPeriod),
	}

	l.loans = append(l.loans, loan)
	l.openLoans[copyID] = len(l.loans) - 1
	l.copies[copyID] = ledger.CopyState{
		CopyID:     copyID,
		Status:     ledger.StatusReserved,
		BorrowerID: borrowerID,
		DueBack:    loan.DueAt,
	}

	l.mu.Unlock()

	l.emitAuditEvent(ctx, borrowerID, ledger.AuditActionLoanOpened, copyID, now)

	return loan, nil
}

// CloseLoan stamps ReturnedAt on the copy's open loan and transitions the
// copy back to available. A double return is rejected with ErrLoanConflict.
func (l *Ledger) CloseLoan(ctx context.Context, copyID uuid.UUID) (ledger.Loan, error) {
	var empty ledger.Loan

	l.mu.Lock()

	if _, exists := l.copies[copyID]; !exists {
		l.mu.Unlock()
		return empty, ledger.ErrCopyNotFound
	}

	idx, hasOpenLoan := l.openLoans[copyID]
	if !hasOpenLoan {
		l.mu.Unlock()
		return empty, ledger.ErrLoanConflict
	}

	now := l.clock().UTC()
	l.loans[idx].ReturnedAt = now
	closedLoan := l.loans[idx]

	delete(l.openLoans, copyID)
	l.copies[copyID] = ledger.CopyState{
		CopyID: copyID,
		Status: ledger.StatusAvailable,
	}

	l.mu.Unlock()

	l.emitAuditEvent(ctx, closedLoan.BorrowerID, ledger.AuditActionLoanClosed, copyID, now)

	return closedLoan, nil
}

// GetOpenLoan returns the copy's open loan or ledger.ErrOpenLoanNotFound.
func (l *Ledger) GetOpenLoan(_ context.Context, copyID uuid.UUID) (ledger.Loan, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, hasOpenLoan := l.openLoans[copyID]
	if !hasOpenLoan {
		return ledger.Loan{}, ledger.ErrOpenLoanNotFound
	}

	return l.loans[idx], nil
}

// GetCopyState returns the loan-related state of the copy or ledger.ErrCopyNotFound.
func (l *Ledger) GetCopyState(_ context.Context, copyID uuid.UUID) (ledger.CopyState, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	state, exists := l.copies[copyID]
	if !exists {
		return ledger.CopyState{}, ledger.ErrCopyNotFound
	}

	return state, nil
}

// ListOverdue returns all open loans with DueAt before asOf, ordered by
// DueAt ascending.
func (l *Ledger) ListOverdue(_ context.Context, asOf time.Time) (ledger.Loans, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	overdue := make(ledger.Loans, 0)

	for _, idx := range l.openLoans {
		if l.loans[idx].DueAt.Before(asOf.UTC()) {
			overdue = append(overdue, l.loans[idx])
		}
	}

	sort.Slice(overdue, func(i, j int) bool {
		return overdue[i].DueAt.Before(overdue[j].DueAt)
	})

	return overdue, nil
}

// ListLoansForUser returns all loans of the user, open and historical,
// ordered by BorrowedAt descending.
func (l *Ledger) ListLoansForUser(_ context.Context, userID uuid.UUID) (ledger.Loans, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	userLoans := make(ledger.Loans, 0)

	for _, loan := range l.loans {
		if loan.BorrowerID == userID {
			userLoans = append(userLoans, loan)
		}
	}

	sort.Slice(userLoans, func(i, j int) bool {
		return userLoans[i].BorrowedAt.After(userLoans[j].BorrowedAt)
	})

	return userLoans, nil
}

// Snapshot is the serializable representation of the in-memory state,
// useful for debugging and fixtures.
type Snapshot struct {
	Copies []ledger.CopyState `json:"copies"`
	Loans  ledger.Loans       `json:"loans"`
}

// SnapshotJSON exports the current state as JSON.
func (l *Ledger) SnapshotJSON() ([]byte, error) {
	l.mu.RLock()

	snapshot := Snapshot{
		Copies: make([]ledger.CopyState, 0, len(l.copies)),
		Loans:  make(ledger.Loans, len(l.loans)),
	}

	for _, state := range l.copies {
		snapshot.Copies = append(snapshot.Copies, state)
	}
	copy(snapshot.Loans, l.loans)

	l.mu.RUnlock()

	sort.Slice(snapshot.Copies, func(i, j int) bool {
		return snapshot.Copies[i].CopyID.String() < snapshot.Copies[j].CopyID.String()
	})

	return jsoniter.Marshal(snapshot)
}

func (l *Ledger) emitAuditEvent(
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
		if l.logger != nil {
			l.logger.Warn(logMsgAuditRecordFailed, logAttrError, recordErr.Error(), logAttrAction, action)
		}
	}
}

var _ ledger.Ledger = (*Ledger)(nil)
var _ ledger.LoanReader = (*Ledger)(nil)
