package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aqline/storefront/internal/adapter/httphandler"
	"github.com/aqline/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Login(
	ctx context.Context, email string,
) (domain.Session, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionManager) Logout(
	ctx context.Context, sessionID string,
) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newSessionMux(manager *MockSessionManager) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterSession(mux, manager, stubSessions{
		token: testToken,
		sess:  domain.Session{ID: testToken, Email: "buyer@example.com"},
	})
	return mux
}

func TestLogin(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		manager := new(MockSessionManager)
		mux := newSessionMux(manager)

		manager.On("Login", mock.Anything, "buyer@example.com").
			Return(domain.Session{ID: "abc", Email: "buyer@example.com"}, nil)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/session",
			strings.NewReader(`{"email":"buyer@example.com"}`),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var res httphandler.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Equal(t, "abc", res.Token)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		manager := new(MockSessionManager)
		mux := newSessionMux(manager)

		manager.On("Login", mock.Anything, "nope").
			Return(domain.Session{}, domain.ErrValidation)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/session",
			strings.NewReader(`{"email":"nope"}`),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		manager := new(MockSessionManager)
		mux := newSessionMux(manager)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/session", strings.NewReader(`{`),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		manager := new(MockSessionManager)
		mux := newSessionMux(manager)

		manager.On("Logout", mock.Anything, testToken).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/session", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("NoToken", func(t *testing.T) {
		manager := new(MockSessionManager)
		mux := newSessionMux(manager)

		req := httptest.NewRequest(http.MethodDelete, "/v1/session", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
