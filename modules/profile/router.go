// Package profile mounts the authenticated profile endpoint.
package profile

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gatekit/gatekit/core"
	"github.com/gatekit/gatekit/pkg/entitlement"
	"github.com/gatekit/gatekit/pkg/identity"
)

// SessionVerifier resolves the caller's identity from the request.
// Satisfied by *identity.Service.
type SessionVerifier interface {
	CurrentUser(ctx context.Context, r *http.Request) (*identity.User, error)
}

// EntitlementResolver answers plan and display-name questions.
// Satisfied by *entitlement.Resolver.
type EntitlementResolver interface {
	Plan(ctx context.Context, userID uuid.UUID) entitlement.Plan
	DisplayName(ctx context.Context, userID uuid.UUID, user *identity.User, firstNameOnly bool) string
}

// Router mounts the profile endpoints.
//
//	GET /me  -> {"email","plan","display_name","first_name"}
func Router(sessions SessionVerifier, entitlements EntitlementResolver) chi.Router {
	r := chi.NewRouter()
	r.Get("/me", handleMe(sessions, entitlements))
	return r
}

type meResponse struct {
	Email       string           `json:"email"`
	Plan        entitlement.Plan `json:"plan"`
	DisplayName string           `json:"display_name"`
	FirstName   string           `json:"first_name"`
}

func handleMe(sessions SessionVerifier, entitlements EntitlementResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := sessions.CurrentUser(r.Context(), r)
		if err != nil {
			core.Err(w, core.ErrUnauthorized)
			return
		}

		core.JSON(w, http.StatusOK, meResponse{
			Email:       user.Email,
			Plan:        entitlements.Plan(r.Context(), user.ID),
			DisplayName: entitlements.DisplayName(r.Context(), user.ID, user, false),
			FirstName:   entitlements.DisplayName(r.Context(), user.ID, user, true),
		})
	}
}
