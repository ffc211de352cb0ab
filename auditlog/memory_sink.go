package auditlog

import (
	"context"
	"sync"

	"github.com/shelftrack/loanledger-go/ledger"
)

// MemorySink records audit events in memory for inspection in tests.
type MemorySink struct {
	mu     sync.Mutex
	events []ledger.AuditEvent
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Record appends the event to the in-memory list.
func (s *MemorySink) Record(_ context.Context, event ledger.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)

	return nil
}

// Events returns a copy of all recorded events in order.
func (s *MemorySink) Events() []ledger.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]ledger.AuditEvent, len(s.events))
	copy(events, s.events)

	return events
}

var _ ledger.AuditSink = (*MemorySink)(nil)
