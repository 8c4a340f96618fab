package authstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gatekit/gatekit/pkg/identity"
)

// Snapshot is a point-in-time view of the authentication state.
// User is nil when nobody is signed in; Loading is true only during the
// initial resolution window before the first session check completes.
type Snapshot struct {
	User    *identity.User
	Loading bool
}

// ResolveFunc resolves the currently authenticated user, typically by
// asking the identity provider to verify the stored credential. Returning
// an error is not fatal: it simply means nobody is signed in.
type ResolveFunc func(ctx context.Context) (*identity.User, error)

// State owns the auth snapshot for one application scope. All writes happen
// on a single goroutine fed by the provider's event stream, so updates never
// race; reads are guarded by an RWMutex and may come from anywhere.
type State struct {
	mu   sync.RWMutex
	snap Snapshot

	cancel context.CancelFunc
	done   chan struct{}
	log    *slog.Logger
}

// New creates a State and starts its event loop. The loop first resolves the
// current user via resolve, then applies events until ctx is cancelled, the
// events channel closes, or Close is called.
func New(ctx context.Context, resolve ResolveFunc, events <-chan identity.Event, log *slog.Logger) *State {
	if log == nil {
		log = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &State{
		snap:   Snapshot{Loading: true},
		cancel: cancel,
		done:   make(chan struct{}),
		log:    log,
	}

	go s.run(ctx, resolve, events)
	return s
}

func (s *State) run(ctx context.Context, resolve ResolveFunc, events <-chan identity.Event) {
	defer close(s.done)

	user, err := resolve(ctx)
	if err != nil {
		// No session is an expected outcome, not a failure of the state.
		s.log.DebugContext(ctx, "initial session resolution returned no user", "error", err)
		user = nil
	}
	s.set(Snapshot{User: user, Loading: false})

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			s.apply(e)
		}
	}
}

func (s *State) apply(e identity.Event) {
	switch e.Type {
	case identity.EventSignedIn, identity.EventTokenRefreshed:
		if e.User != nil {
			s.set(Snapshot{User: e.User, Loading: false})
		}
	case identity.EventSignedOut:
		s.set(Snapshot{User: nil, Loading: false})
	}
}

func (s *State) set(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the current auth snapshot.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Close stops the event loop and waits for it to finish. No snapshot update
// happens after Close returns.
func (s *State) Close() error {
	s.cancel()
	<-s.done
	return nil
}
