package billing_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/modules/billing"
	billingsvc "github.com/gatekit/gatekit/pkg/billing"
)

type mockCheckoutService struct {
	mock.Mock
}

func (m *mockCheckoutService) CreateCheckoutSession(ctx context.Context, r *http.Request) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

func TestRouter_Checkout(t *testing.T) {
	t.Parallel()

	t.Run("returns the checkout url", func(t *testing.T) {
		t.Parallel()

		svc := new(mockCheckoutService)
		svc.On("CreateCheckoutSession", mock.Anything, mock.Anything).
			Return("https://buy.example.com/txn_123", nil)

		srv := httptest.NewServer(billing.Router(svc))
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/checkout", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			URL string `json:"url"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "https://buy.example.com/txn_123", body.URL)
	})

	t.Run("unauthenticated caller gets 401", func(t *testing.T) {
		t.Parallel()

		svc := new(mockCheckoutService)
		svc.On("CreateCheckoutSession", mock.Anything, mock.Anything).
			Return("", billingsvc.ErrUnauthenticated)

		srv := httptest.NewServer(billing.Router(svc))
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/checkout", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Error)
	})

	t.Run("provider failure collapses to a generic 500", func(t *testing.T) {
		t.Parallel()

		svc := new(mockCheckoutService)
		svc.On("CreateCheckoutSession", mock.Anything, mock.Anything).
			Return("", errors.Join(billingsvc.ErrCheckoutFailed, errors.New("paddle: request timed out")))

		srv := httptest.NewServer(billing.Router(svc))
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/checkout", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		// The payment vendor never leaks into the response body.
		assert.NotContains(t, body.Error, "paddle")
	})
}
