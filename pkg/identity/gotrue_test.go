package identity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/identity"
)

func testClientConfig(baseURL string) identity.Config {
	return identity.Config{
		BaseURL:        baseURL,
		APIKey:         "anon-key",
		ServiceKey:     "service-key",
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_SignIn(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "u@x.com", creds.Email)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok-123",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "ref-123",
			"user":          map[string]any{"id": userID.String(), "email": "u@x.com"},
		})
	}))
	defer srv.Close()

	client, err := identity.NewClient(testClientConfig(srv.URL))
	require.NoError(t, err)

	session, err := client.SignIn(context.Background(), "u@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.AccessToken)
	assert.False(t, session.IsExpired())
	require.NotNil(t, session.User)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, "u@x.com", session.User.Email)
}

func TestClient_SignIn_BadCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "Invalid login credentials",
		})
	}))
	defer srv.Close()

	client, err := identity.NewClient(testClientConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.SignIn(context.Background(), "u@x.com", "wrong")
	require.Error(t, err)

	// Provider errors surface verbatim as values, never panics.
	var pe *identity.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusBadRequest, pe.Status)
	assert.Equal(t, "Invalid login credentials", pe.Message)
}

func TestClient_SignUp_UnconfirmedUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/signup", r.URL.Path)
		// Without auto-confirm the provider returns a bare user object.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    userID.String(),
			"email": "new@x.com",
		})
	}))
	defer srv.Close()

	client, err := identity.NewClient(testClientConfig(srv.URL))
	require.NoError(t, err)

	session, err := client.SignUp(context.Background(), "new@x.com", "secret")
	require.NoError(t, err)
	assert.Empty(t, session.AccessToken)
	require.NotNil(t, session.User)
	assert.Equal(t, userID, session.User.ID)
}

func TestClient_User(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/user", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    userID.String(),
			"email": "u@x.com",
		})
	}))
	defer srv.Close()

	client, err := identity.NewClient(testClientConfig(srv.URL))
	require.NoError(t, err)

	user, err := client.User(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "u@x.com", user.Email)
}

func TestClient_SignOut(t *testing.T) {
	t.Parallel()

	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, "/logout", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := identity.NewClient(testClientConfig(srv.URL))
	require.NoError(t, err)

	require.NoError(t, client.SignOut(context.Background(), "tok-123"))
	assert.True(t, called)
}

func TestAdminClient_DeleteUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("deletes by id with the service key", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/admin/users/"+userID.String(), r.URL.Path)
			require.Equal(t, "service-key", r.Header.Get("apikey"))
			require.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		admin, err := identity.NewAdminClient(testClientConfig(srv.URL))
		require.NoError(t, err)
		require.NoError(t, admin.DeleteUser(context.Background(), userID))
	})

	t.Run("requires the service key", func(t *testing.T) {
		t.Parallel()

		cfg := testClientConfig("http://localhost")
		cfg.ServiceKey = ""
		_, err := identity.NewAdminClient(cfg)
		require.ErrorIs(t, err, identity.ErrMissingServiceKey)
	})

	t.Run("surfaces the provider failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "database error"})
		}))
		defer srv.Close()

		admin, err := identity.NewAdminClient(testClientConfig(srv.URL))
		require.NoError(t, err)

		err = admin.DeleteUser(context.Background(), userID)
		var pe *identity.ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, http.StatusInternalServerError, pe.Status)
		assert.Equal(t, "database error", pe.Message)
	})
}
