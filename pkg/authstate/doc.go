// Package authstate maintains a process-local, continuously updated snapshot
// of the authentication state: the current user and whether the initial
// resolution is still in flight.
//
// A State starts in the loading phase, resolves the current user once
// through the identity provider, and from then on follows the provider's
// auth change events. The event loop is the only writer; any number of
// readers take consistent snapshots. Loading flips to false exactly once per
// State lifetime and never back.
//
// The state is distributed through context: the application scope is wrapped
// once with WithState at startup and consumers read it with FromContext or
// MustFromContext. Consuming outside a wrapped scope is an integration bug,
// so MustFromContext fails loudly instead of inventing a default.
package authstate
