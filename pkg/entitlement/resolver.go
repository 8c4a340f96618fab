package entitlement

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gatekit/gatekit/pkg/identity"
)

// fallbackDisplayName is used when neither the profile nor the identity
// yields anything presentable.
const fallbackDisplayName = "User"

// Resolver answers plan and display-name questions for a user, failing
// closed to the free tier on any store fault.
type Resolver struct {
	store ProfileStore
	cache Cache
	log   *slog.Logger
}

// NewResolver creates a resolver. A nil cache disables caching.
func NewResolver(store ProfileStore, cache Cache, log *slog.Logger) *Resolver {
	if cache == nil {
		cache = NoOpCache{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{store: store, cache: cache, log: log}
}

// Plan resolves the user's subscription tier. Any failure — missing row,
// unreachable store, unknown value — resolves to PlanFree and is logged as
// a warning, never returned. See the package documentation for why.
func (r *Resolver) Plan(ctx context.Context, userID uuid.UUID) Plan {
	if plan, ok := r.cache.Get(ctx, userID); ok {
		return plan
	}

	profile, err := r.store.Profile(ctx, userID)
	if err != nil {
		r.log.WarnContext(ctx, "plan resolution failed, defaulting to free tier",
			"user_id", userID,
			"error", err,
		)
		return PlanFree
	}

	if !profile.Plan.IsValid() {
		r.log.WarnContext(ctx, "unknown plan value in profile, defaulting to free tier",
			"user_id", userID,
			"plan", string(profile.Plan),
		)
		return PlanFree
	}

	if err := r.cache.Set(ctx, userID, profile.Plan); err != nil {
		r.log.DebugContext(ctx, "failed to cache plan", "user_id", userID, "error", err)
	}

	return profile.Plan
}

// IsUnlimited reports whether the user is on the paid tier.
func (r *Resolver) IsUnlimited(ctx context.Context, userID uuid.UUID) bool {
	return r.Plan(ctx, userID) == PlanUnlimited
}

// DisplayName resolves a presentable name for the user. Resolution order:
// the profile's display_name, then the leading segment of the identity's
// email local-part, then "User". With firstNameOnly, a stored display name
// is cut at the first space.
func (r *Resolver) DisplayName(ctx context.Context, userID uuid.UUID, user *identity.User, firstNameOnly bool) string {
	profile, err := r.store.Profile(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			r.log.WarnContext(ctx, "display name lookup failed", "user_id", userID, "error", err)
		}
	} else if profile.DisplayName != "" {
		name := profile.DisplayName
		if firstNameOnly {
			name, _, _ = strings.Cut(name, " ")
		}
		return name
	}

	if user != nil && user.Email != "" {
		if local, _, ok := strings.Cut(user.Email, "@"); ok && local != "" {
			// "jane.doe@example.com" should read as "jane", not "jane.doe".
			first, _, _ := strings.Cut(local, ".")
			if first != "" {
				return first
			}
		}
	}

	return fallbackDisplayName
}
