package authstate

import (
	"context"
	"errors"
)

// ErrNotProvided indicates the auth state was consumed outside a scope
// wrapped with WithState. This is a programming error, not a runtime
// condition, which is why MustFromContext panics with it.
var ErrNotProvided = errors.New("authstate: state not provided in context")

type stateContextKey struct{}

// WithState attaches the State to the context. Call once at the application
// scope root; nested calls shadow the outer state.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, s)
}

// FromContext retrieves the State from the context.
func FromContext(ctx context.Context) (*State, bool) {
	s, ok := ctx.Value(stateContextKey{}).(*State)
	return s, ok
}

// MustFromContext retrieves the State or panics with ErrNotProvided.
// Failing fast here surfaces missing WithState wiring during development
// instead of silently treating every caller as signed out.
func MustFromContext(ctx context.Context) *State {
	s, ok := FromContext(ctx)
	if !ok {
		panic(ErrNotProvided)
	}
	return s
}
