package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StaticProvider is a Provider backed by a fixed set of staff user ids,
// useful for tests and for embedders with an in-process user registry.
type StaticProvider struct {
	mu    sync.RWMutex
	staff map[uuid.UUID]struct{}
}

// NewStaticProvider creates a StaticProvider marking the given users as staff.
func NewStaticProvider(staffIDs ...uuid.UUID) *StaticProvider {
	staff := make(map[uuid.UUID]struct{}, len(staffIDs))

	for _, id := range staffIDs {
		staff[id] = struct{}{}
	}

	return &StaticProvider{staff: staff}
}

// MarkStaff marks a user as staff.
func (p *StaticProvider) MarkStaff(userID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.staff[userID] = struct{}{}
}

// IsStaff reports whether the user was registered as staff.
func (p *StaticProvider) IsStaff(_ context.Context, userID uuid.UUID) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, isStaff := p.staff[userID]

	return isStaff, nil
}

var _ Provider = (*StaticProvider)(nil)
