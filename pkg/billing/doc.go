// Package billing orchestrates hosted checkout sessions for the one-time
// plan upgrade purchase.
//
// The orchestrator never trusts identity fields arriving with the request:
// the caller is resolved through a server-side session check and the
// resulting identity is what gets bound into the checkout metadata, so a
// later payment-completion callback can attribute the purchase without
// trusting client input. Success and cancel destinations are fixed server
// configuration, which closes the open-redirect hole caller-supplied URLs
// would open.
//
// Payment providers sit behind the narrow Provider interface; the Paddle
// implementation is the production one. Provider failures are logged with
// full detail but surfaced to callers as a single generic error.
package billing
