package entitlement

import (
	"context"

	"github.com/google/uuid"
)

// Profile is the externally stored per-user row. The subsystem only reads
// plan and display_name and deletes the row on account erasure; plan writes
// happen outside this codebase when a payment completes.
type Profile struct {
	ID          uuid.UUID
	Plan        Plan
	DisplayName string
}

// ProfileStore is the profile-store boundary.
type ProfileStore interface {
	// Profile reads the row for the given user.
	// Returns ErrProfileNotFound when no row exists.
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// Delete removes the row for the given user. Deleting a missing row
	// is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}
