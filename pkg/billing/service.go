package billing

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gatekit/gatekit/pkg/identity"
)

// Config holds the server-side checkout parameters. The price and both
// redirect destinations are fixed configuration, never caller input.
type Config struct {
	PriceID    string `env:"BILLING_PRICE_ID,required"`
	SuccessURL string `env:"BILLING_SUCCESS_URL,required"`
	CancelURL  string `env:"BILLING_CANCEL_URL,required"`
}

// SessionVerifier resolves the caller's identity from the request via a
// server-side session check. Satisfied by *identity.Service.
type SessionVerifier interface {
	CurrentUser(ctx context.Context, r *http.Request) (*identity.User, error)
}

// Service is the checkout orchestrator.
type Service struct {
	sessions SessionVerifier
	provider Provider
	cfg      Config
	log      *slog.Logger
}

// NewService creates a checkout orchestrator.
func NewService(sessions SessionVerifier, provider Provider, cfg Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{sessions: sessions, provider: provider, cfg: cfg, log: log}
}

// CreateCheckoutSession validates the caller's session, binds a checkout to
// the verified identity and returns the hosted redirect URL.
//
// Each call creates a fresh provider session; concurrent calls from the same
// user deliberately get independent sessions and the provider deduplicates
// completed payments.
func (s *Service) CreateCheckoutSession(ctx context.Context, r *http.Request) (string, error) {
	user, err := s.sessions.CurrentUser(ctx, r)
	if err != nil {
		s.log.DebugContext(ctx, "checkout rejected: no verified session", "error", err)
		return "", ErrUnauthenticated
	}

	link, err := s.provider.CreateCheckout(ctx, CheckoutRequest{
		PriceID:    s.cfg.PriceID,
		UserID:     user.ID,
		Email:      user.Email,
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "checkout creation failed",
			"user_id", user.ID,
			"error", err,
		)
		return "", ErrCheckoutFailed
	}

	s.log.InfoContext(ctx, "checkout session created",
		"user_id", user.ID,
		"transaction_id", link.TransactionID,
	)
	return link.URL, nil
}
