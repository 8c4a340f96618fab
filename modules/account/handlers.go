package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gatekit/gatekit/core"
	accountsvc "github.com/gatekit/gatekit/pkg/account"
	"github.com/gatekit/gatekit/pkg/identity"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *identity.User `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, core.ErrBadRequest
	}
	// Presence is the only local validation; credential checks belong to
	// the identity provider.
	if req.Email == "" || req.Password == "" {
		return req, core.ErrBadRequest
	}
	return req, nil
}

func handleSignUp(auth AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCredentials(r)
		if err != nil {
			core.Err(w, err)
			return
		}

		user, err := auth.SignUp(r.Context(), w, req.Email, req.Password)
		if err != nil {
			respondAuthError(w, err)
			return
		}
		core.JSON(w, http.StatusCreated, userResponse{User: user})
	}
}

func handleSignIn(auth AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCredentials(r)
		if err != nil {
			core.Err(w, err)
			return
		}

		user, err := auth.SignIn(r.Context(), w, req.Email, req.Password)
		if err != nil {
			respondAuthError(w, err)
			return
		}
		core.JSON(w, http.StatusOK, userResponse{User: user})
	}
}

func handleSignOut(auth AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := auth.SignOut(r.Context(), w, r); err != nil {
			respondAuthError(w, err)
			return
		}
		core.JSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func handleDeleteAccount(eraser AccountEraser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := eraser.DeleteAccount(r.Context(), r); err != nil {
			if errors.Is(err, accountsvc.ErrUnauthenticated) {
				core.Err(w, core.ErrUnauthorized)
				return
			}
			core.Err(w, core.ErrInternalServerError)
			return
		}
		core.JSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// respondAuthError maps identity failures onto HTTP responses. Provider
// client errors pass through with the provider's own message (wrong
// password, duplicate email and similar are the user's business); anything
// else collapses to a generic status.
func respondAuthError(w http.ResponseWriter, err error) {
	var pe *identity.ProviderError
	if errors.As(err, &pe) && pe.Status >= 400 && pe.Status < 500 {
		core.JSON(w, pe.Status, map[string]string{"error": pe.Message})
		return
	}
	if errors.Is(err, identity.ErrNoSession) {
		core.Err(w, core.ErrUnauthorized)
		return
	}
	core.Err(w, core.ErrInternalServerError)
}
