// Package identity integrates an external identity provider exposing a
// GoTrue-compatible REST API (sign-up, password grant, sign-out, current
// user, administrative user deletion).
//
// The package deliberately owns nothing about users: the provider issues
// identities and sessions, and everything here only reads them. Expected
// failures (bad credentials, missing session) are returned as values, never
// panics.
//
// # Architecture
//
// A Service binds three collaborators together:
//
//   - Provider: the provider's public API (sign-up/in/out, current user)
//   - Transport: how the session credential travels on HTTP requests
//     (cookie, bearer header, or a composite of both)
//   - an internal event bus publishing auth change events consumed by
//     package authstate
//
// The Admin interface is kept separate from Provider on purpose: it is the
// single elevated capability in the system (delete-identity-by-id) and must
// be constructed with the service-role key, which never reaches end users.
package identity
