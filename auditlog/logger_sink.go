package auditlog

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/shelftrack/loanledger-go/ledger"
)

const (
	logMsgAuditEvent = "audit event"
	logAttrPayload   = "payload"
)

var ErrNilLoggerSupplied = errors.New("nil logger supplied")

// auditPayload is the JSON shape the LoggerSink emits per event.
type auditPayload struct {
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	SubjectID  string    `json:"subject_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LoggerSink records audit events as structured log lines at Info level.
type LoggerSink struct {
	logger ledger.Logger
}

// NewLoggerSink creates a LoggerSink writing to the given logger.
func NewLoggerSink(logger ledger.Logger) (*LoggerSink, error) {
	if logger == nil {
		return nil, ErrNilLoggerSupplied
	}

	return &LoggerSink{logger: logger}, nil
}

// Record serializes the event and logs it.
func (s *LoggerSink) Record(_ context.Context, event ledger.AuditEvent) error {
	payload := auditPayload{
		ActorID:    event.ActorID.String(),
		Action:     event.Action,
		SubjectID:  event.SubjectID.String(),
		OccurredAt: event.OccurredAt,
	}

	payloadJSON, marshalErr := jsoniter.Marshal(payload)
	if marshalErr != nil {
		return marshalErr
	}

	s.logger.Info(logMsgAuditEvent, logAttrPayload, string(payloadJSON))

	return nil
}

var _ ledger.AuditSink = (*LoggerSink)(nil)
