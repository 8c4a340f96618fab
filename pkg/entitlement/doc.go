// Package entitlement resolves a user's subscription plan and display name
// from the profile store.
//
// The resolver's contract is fail-closed: entitlement checks gate paid
// features, so an unreachable store, a missing row or a malformed value must
// degrade to the free tier rather than fail the request or fail open to the
// paid tier. This is deliberate product behavior, not an error-handling gap;
// faults are logged and never propagated out of plan resolution.
//
// An optional read-through cache (Redis-backed in production, NoOpCache in
// tests) sits in front of the store. Cache faults follow the same posture:
// they count as misses and never surface.
package entitlement
