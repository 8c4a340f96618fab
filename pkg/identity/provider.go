package identity

import (
	"context"

	"github.com/google/uuid"
)

// Provider is the identity provider's public API surface consumed by this
// subsystem. All operations delegate to the provider and surface its errors
// verbatim; no local credential validation happens here.
type Provider interface {
	// SignUp registers a new identity and, when the provider auto-confirms,
	// returns a live session for it.
	SignUp(ctx context.Context, email, password string) (*Session, error)

	// SignIn exchanges credentials for a session (password grant).
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignOut revokes the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error

	// User resolves the identity behind the given access token.
	// This is the server-side session check: the token is verified by the
	// provider, never decoded or trusted locally.
	User(ctx context.Context, accessToken string) (*User, error)
}

// Admin is the elevated capability for account erasure. It is intentionally
// narrow (one method) so the blast radius of the service-role credential
// stays auditable.
type Admin interface {
	// DeleteUser permanently deletes the identity record.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
