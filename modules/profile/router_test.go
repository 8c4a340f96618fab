package profile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/modules/profile"
	"github.com/gatekit/gatekit/pkg/entitlement"
	"github.com/gatekit/gatekit/pkg/identity"
)

type mockSessionVerifier struct {
	mock.Mock
}

func (m *mockSessionVerifier) CurrentUser(ctx context.Context, r *http.Request) (*identity.User, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Plan(ctx context.Context, userID uuid.UUID) entitlement.Plan {
	args := m.Called(ctx, userID)
	return args.Get(0).(entitlement.Plan)
}

func (m *mockResolver) DisplayName(ctx context.Context, userID uuid.UUID, user *identity.User, firstNameOnly bool) string {
	args := m.Called(ctx, userID, user, firstNameOnly)
	return args.String(0)
}

func TestRouter_Me(t *testing.T) {
	t.Parallel()

	t.Run("returns the caller's profile", func(t *testing.T) {
		t.Parallel()

		user := &identity.User{ID: uuid.New(), Email: "ada@x.com"}
		sessions := new(mockSessionVerifier)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).Return(user, nil)

		entitlements := new(mockResolver)
		entitlements.On("Plan", mock.Anything, user.ID).Return(entitlement.PlanUnlimited)
		entitlements.On("DisplayName", mock.Anything, user.ID, user, false).Return("Ada Lovelace")
		entitlements.On("DisplayName", mock.Anything, user.ID, user, true).Return("Ada")

		srv := httptest.NewServer(profile.Router(sessions, entitlements))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/me")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Email       string `json:"email"`
			Plan        string `json:"plan"`
			DisplayName string `json:"display_name"`
			FirstName   string `json:"first_name"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ada@x.com", body.Email)
		assert.Equal(t, "unlimited", body.Plan)
		assert.Equal(t, "Ada Lovelace", body.DisplayName)
		assert.Equal(t, "Ada", body.FirstName)
	})

	t.Run("unauthenticated caller gets 401", func(t *testing.T) {
		t.Parallel()

		sessions := new(mockSessionVerifier)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).
			Return(nil, identity.ErrNoSession)

		entitlements := new(mockResolver)

		srv := httptest.NewServer(profile.Router(sessions, entitlements))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/me")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		entitlements.AssertNotCalled(t, "Plan", mock.Anything, mock.Anything)
	})
}
