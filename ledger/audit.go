package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Audit action kinds emitted by the ledger engines.
const (
	AuditActionLoanOpened = "loan.opened"
	AuditActionLoanClosed = "loan.closed"
)

// AuditEvent describes one ledger mutation for an external audit collaborator.
// The ledger emits the event; it does not know how it is persisted.
type AuditEvent struct {
	ActorID    uuid.UUID
	Action     string
	SubjectID  uuid.UUID
	OccurredAt time.Time
}

// BuildAuditEvent creates a new AuditEvent.
func BuildAuditEvent(actorID uuid.UUID, action string, subjectID uuid.UUID, occurredAt time.Time) AuditEvent {
	return AuditEvent{
		ActorID:    actorID,
		Action:     action,
		SubjectID:  subjectID,
		OccurredAt: occurredAt,
	}
}

// AuditSink receives audit events for ledger mutations. Recording is
// best-effort from the ledger's perspective: a failure to record must not
// roll back the business mutation, engines log it at Warn and move on.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent) error
}
