package account_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/account"
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

type mockAdmin struct {
	mock.Mock
}

func (m *mockAdmin) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProfileDeleter struct {
	mock.Mock
}

func (m *mockProfileDeleter) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestEraser_DeleteAccount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("rejects unauthenticated caller", func(t *testing.T) {
		t.Parallel()

		sessions := new(mockSessionVerifier)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).
			Return(nil, identity.ErrNoSession)
		admin := new(mockAdmin)
		profiles := new(mockProfileDeleter)

		e := account.NewEraser(sessions, admin, profiles, nil)

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		err := e.DeleteAccount(context.Background(), req)

		require.ErrorIs(t, err, account.ErrUnauthenticated)
		admin.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
		profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes identity then profile", func(t *testing.T) {
		t.Parallel()

		sessions := new(mockSessionVerifier)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).
			Return(&identity.User{ID: userID}, nil)
		admin := new(mockAdmin)
		admin.On("DeleteUser", mock.Anything, userID).Return(nil)
		profiles := new(mockProfileDeleter)
		profiles.On("Delete", mock.Anything, userID).Return(nil)

		e := account.NewEraser(sessions, admin, profiles, nil)

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		require.NoError(t, e.DeleteAccount(context.Background(), req))
		admin.AssertExpectations(t)
		profiles.AssertExpectations(t)
	})

	t.Run("profile cleanup failure is swallowed", func(t *testing.T) {
		t.Parallel()

		sessions := new(mockSessionVerifier)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).
			Return(&identity.User{ID: userID}, nil)
		admin := new(mockAdmin)
		admin.On("DeleteUser", mock.Anything, userID).Return(nil)
		profiles := new(mockProfileDeleter)
		profiles.On("Delete", mock.Anything, userID).Return(errors.New("connection refused"))

		e := account.NewEraser(sessions, admin, profiles, nil)

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		require.NoError(t, e.DeleteAccount(context.Background(), req))
	})

	t.Run("identity deletion failure aborts before profile cleanup", func(t *testing.T) {
		t.Parallel()

		sessions := new(mockSessionVerifier)
		sessions.On("CurrentUser", mock.Anything, mock.Anything).
			Return(&identity.User{ID: userID}, nil)
		admin := new(mockAdmin)
		admin.On("DeleteUser", mock.Anything, userID).
			Return(&identity.ProviderError{Status: 500, Message: "admin api unavailable"})
		profiles := new(mockProfileDeleter)

		e := account.NewEraser(sessions, admin, profiles, nil)

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		err := e.DeleteAccount(context.Background(), req)

		require.ErrorIs(t, err, account.ErrIdentityDeletion)

		var pe *identity.ProviderError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, "admin api unavailable", pe.Message)

		profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
