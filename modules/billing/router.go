// Package billing mounts the checkout HTTP endpoint.
package billing

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatekit/gatekit/core"
	billingsvc "github.com/gatekit/gatekit/pkg/billing"
)

// CheckoutService creates a checkout session bound to the authenticated
// caller. Satisfied by *billing.Service.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, r *http.Request) (string, error)
}

// Router mounts the billing endpoints.
//
//	POST /checkout  -> {"url": "..."}
func Router(checkout CheckoutService) chi.Router {
	r := chi.NewRouter()
	r.Post("/checkout", handleCreateCheckout(checkout))
	return r
}

type checkoutResponse struct {
	URL string `json:"url"`
}

func handleCreateCheckout(svc CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := svc.CreateCheckoutSession(r.Context(), r)
		if err != nil {
			if errors.Is(err, billingsvc.ErrUnauthenticated) {
				core.Err(w, core.ErrUnauthorized)
				return
			}
			core.Err(w, core.ErrInternalServerError)
			return
		}
		core.JSON(w, http.StatusOK, checkoutResponse{URL: url})
	}
}
