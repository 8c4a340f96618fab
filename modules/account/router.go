// Package account mounts the auth and account-deletion HTTP endpoints.
package account

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatekit/gatekit/pkg/identity"
)

// AuthService performs the identity operations backing the auth endpoints.
// Satisfied by *identity.Service.
type AuthService interface {
	SignUp(ctx context.Context, w http.ResponseWriter, email, password string) (*identity.User, error)
	SignIn(ctx context.Context, w http.ResponseWriter, email, password string) (*identity.User, error)
	SignOut(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// AccountEraser deletes the authenticated caller's account.
// Satisfied by *account.Eraser.
type AccountEraser interface {
	DeleteAccount(ctx context.Context, r *http.Request) error
}

// Router mounts the account endpoints.
//
//	POST   /signup   {"email","password"} -> {"user": {...}}
//	POST   /signin   {"email","password"} -> {"user": {...}}
//	POST   /signout                       -> {"success": true}
//	DELETE /                              -> {"success": true}
func Router(auth AuthService, eraser AccountEraser) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", handleSignUp(auth))
	r.Post("/signin", handleSignIn(auth))
	r.Post("/signout", handleSignOut(auth))
	r.Delete("/", handleDeleteAccount(eraser))

	return r
}
