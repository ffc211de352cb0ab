// Package identity abstracts the external identity provider the loan
// lifecycle engine consults for borrowing policy. Authentication mechanics
// are out of scope; the engine only ever asks whether a user is staff.
package identity

import (
	"context"

	"github.com/google/uuid"
)

// Provider answers role questions about users.
type Provider interface {
	// IsStaff reports whether the user belongs to a staff or manager role.
	IsStaff(ctx context.Context, userID uuid.UUID) (bool, error)
}
