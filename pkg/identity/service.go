package identity

import (
	"context"
	"log/slog"
	"net/http"
)

// Service binds the provider client to an HTTP token transport and publishes
// auth change events. It is the single entry point the rest of the subsystem
// uses to establish who the caller is: every protected operation goes through
// CurrentUser, which verifies the credential against the provider server-side
// instead of trusting anything in the request body.
type Service struct {
	provider  Provider
	transport Transport
	events    *eventBus
	log       *slog.Logger
}

// NewService creates an identity service.
func NewService(provider Provider, transport Transport, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		provider:  provider,
		transport: transport,
		events:    newEventBus(),
		log:       log,
	}
}

// SignUp registers a new identity. When the provider auto-confirms and
// returns a live session, the credential is attached to the response and a
// signed-in event is published.
func (s *Service) SignUp(ctx context.Context, w http.ResponseWriter, email, password string) (*User, error) {
	session, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if session.AccessToken != "" {
		if err := s.transport.SetToken(w, session.AccessToken, session.TTL()); err != nil {
			return nil, err
		}
		s.events.publish(Event{Type: EventSignedIn, User: session.User})
	}

	return session.User, nil
}

// SignIn exchanges credentials for a session, attaches the credential to the
// response and publishes a signed-in event.
func (s *Service) SignIn(ctx context.Context, w http.ResponseWriter, email, password string) (*User, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.transport.SetToken(w, session.AccessToken, session.TTL()); err != nil {
		return nil, err
	}

	s.events.publish(Event{Type: EventSignedIn, User: session.User})
	return session.User, nil
}

// SignOut revokes the caller's session at the provider and clears the local
// credential. The credential is cleared even when revocation fails, so a
// broken provider cannot pin a client to a dead session.
func (s *Service) SignOut(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := s.transport.Token(r)
	if err != nil {
		return err
	}

	revokeErr := s.provider.SignOut(ctx, token)
	if revokeErr != nil {
		s.log.WarnContext(ctx, "session revocation failed", "error", revokeErr)
	}

	if err := s.transport.ClearToken(w); err != nil {
		return err
	}

	s.events.publish(Event{Type: EventSignedOut})
	return revokeErr
}

// CurrentUser resolves the caller's identity by verifying the request
// credential against the provider. Returns ErrNoSession when the request
// carries no credential.
func (s *Service) CurrentUser(ctx context.Context, r *http.Request) (*User, error) {
	token, err := s.transport.Token(r)
	if err != nil {
		return nil, err
	}
	return s.provider.User(ctx, token)
}

// CurrentSession resolves the caller's session: the request credential plus
// the provider-verified identity behind it.
func (s *Service) CurrentSession(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := s.transport.Token(r)
	if err != nil {
		return nil, err
	}

	user, err := s.provider.User(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Session{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// Subscribe returns a channel of auth change events. The subscription ends
// when ctx is cancelled or the service closes.
func (s *Service) Subscribe(ctx context.Context) <-chan Event {
	return s.events.subscribe(ctx)
}

// Close shuts down the event bus and closes all subscriber channels.
func (s *Service) Close() error {
	s.events.close()
	return nil
}
