package billing

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutRequest is the ephemeral value submitted to the payment provider.
// It exists for the duration of one checkout creation call and is never
// persisted.
type CheckoutRequest struct {
	PriceID    string    // provider's price identifier, server-configured
	UserID     uuid.UUID // verified identity, carried as metadata
	Email      string    // buyer email when the identity has one
	SuccessURL string    // fixed redirect after payment
	CancelURL  string    // fixed redirect on abandon
}

// CheckoutLink is the provider-hosted checkout session.
type CheckoutLink struct {
	URL           string // hosted checkout URL to redirect the buyer to
	TransactionID string // provider's transaction identifier
}

// Provider creates hosted checkout sessions. Kept to a single capability so
// a webhook consumer can be added later without widening the orchestrator's
// dependency.
type Provider interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)
}
