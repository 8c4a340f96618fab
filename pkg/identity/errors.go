package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession indicates the request carries no session credential.
	ErrNoSession = errors.New("identity.no_session")

	// ErrMissingBaseURL indicates the provider base URL is not configured.
	ErrMissingBaseURL = errors.New("identity.missing_base_url")

	// ErrMissingAPIKey indicates the provider API key is not configured.
	ErrMissingAPIKey = errors.New("identity.missing_api_key")

	// ErrMissingServiceKey indicates the admin client was constructed
	// without the elevated service-role key.
	ErrMissingServiceKey = errors.New("identity.missing_service_key")
)

// ProviderError is a failure reported by the identity provider itself,
// surfaced verbatim so callers see the provider's own message.
type ProviderError struct {
	Status  int    // HTTP status returned by the provider
	Message string // provider's error description
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity: provider returned %d: %s", e.Status, e.Message)
}
