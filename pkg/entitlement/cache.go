package entitlement

import (
	"context"

	"github.com/google/uuid"
)

// Cache is an optional read-through cache in front of plan resolution.
// Implementations must treat their own faults as misses; the resolver never
// distinguishes a cache error from a cold cache.
type Cache interface {
	// Get returns the cached plan for the user and whether it was present.
	Get(ctx context.Context, userID uuid.UUID) (Plan, bool)

	// Set stores the plan for the user.
	Set(ctx context.Context, userID uuid.UUID, plan Plan) error

	// Delete evicts the user's cached plan.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// NoOpCache disables caching, useful for tests or single-instance setups.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, userID uuid.UUID) (Plan, bool) { return "", false }

func (NoOpCache) Set(ctx context.Context, userID uuid.UUID, plan Plan) error { return nil }

func (NoOpCache) Delete(ctx context.Context, userID uuid.UUID) error { return nil }
