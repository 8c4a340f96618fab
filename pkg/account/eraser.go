// Package account implements account erasure: the identity record is deleted
// through the elevated admin capability, then the profile row is cleaned up
// best-effort.
package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gatekit/gatekit/pkg/identity"
)

// SessionVerifier resolves the caller's identity from the request via a
// server-side session check. Satisfied by *identity.Service.
type SessionVerifier interface {
	CurrentUser(ctx context.Context, r *http.Request) (*identity.User, error)
}

// ProfileDeleter removes the user's profile row.
// Satisfied by entitlement.ProfileStore implementations.
type ProfileDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Eraser deletes a user's account.
type Eraser struct {
	sessions SessionVerifier
	admin    identity.Admin
	profiles ProfileDeleter
	log      *slog.Logger
}

// NewEraser creates an account eraser.
func NewEraser(sessions SessionVerifier, admin identity.Admin, profiles ProfileDeleter, log *slog.Logger) *Eraser {
	if log == nil {
		log = slog.Default()
	}
	return &Eraser{sessions: sessions, admin: admin, profiles: profiles, log: log}
}

// DeleteAccount erases the caller's account.
//
// The identity record deletion is authoritative: if it fails, the whole
// operation aborts with the provider's message attached. The profile row
// deletion afterwards is best-effort — the identity is already gone at that
// point, so an orphaned row is a cleanable inconsistency, not a failure the
// caller should see.
func (e *Eraser) DeleteAccount(ctx context.Context, r *http.Request) error {
	user, err := e.sessions.CurrentUser(ctx, r)
	if err != nil {
		e.log.DebugContext(ctx, "account deletion rejected: no verified session", "error", err)
		return ErrUnauthenticated
	}

	if err := e.admin.DeleteUser(ctx, user.ID); err != nil {
		e.log.ErrorContext(ctx, "identity deletion failed", "user_id", user.ID, "error", err)
		return errors.Join(ErrIdentityDeletion, err)
	}

	if err := e.profiles.Delete(ctx, user.ID); err != nil {
		e.log.WarnContext(ctx, "profile cleanup failed after identity deletion",
			"user_id", user.ID,
			"error", err,
		)
	}

	e.log.InfoContext(ctx, "account deleted", "user_id", user.ID)
	return nil
}
