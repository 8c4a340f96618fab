package identity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal as issued by the identity provider.
// The subsystem never constructs or mutates users, only reads them.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Session proves that a User is currently authenticated. It is created on
// sign-in or sign-up, destroyed on sign-out, and refreshed by the provider.
type Session struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user,omitempty"`
}

// IsExpired reports whether the session's access token has expired.
func (s *Session) IsExpired() bool {
	return s != nil && !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// TTL returns the remaining lifetime of the session's access token,
// or zero when the session has no known expiry.
func (s *Session) TTL() time.Duration {
	if s == nil || s.ExpiresAt.IsZero() {
		return 0
	}
	return time.Until(s.ExpiresAt)
}
