package service_test

import (
	"context"
	"testing"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(
	ctx context.Context, email string,
) (domain.Session, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Session(
	ctx context.Context, sessionID string,
) (domain.Session, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(
	ctx context.Context, sessionID string,
) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestSessionServiceLogin(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		repo := new(MockSessionRepository)
		s := service.NewSessionService(repo)

		want := domain.Session{ID: "abc", Email: "buyer@example.com"}
		repo.On("CreateSession", t.Context(), "buyer@example.com").
			Return(want, nil)

		sess, err := s.Login(t.Context(), "  buyer@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, want, sess)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		repo := new(MockSessionRepository)
		s := service.NewSessionService(repo)

		_, err := s.Login(t.Context(), "not-an-email")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "CreateSession")
	})
}

func TestSessionServiceSession(t *testing.T) {
	t.Run("EmptyID", func(t *testing.T) {
		repo := new(MockSessionRepository)
		s := service.NewSessionService(repo)

		_, err := s.Session(t.Context(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("UnknownID", func(t *testing.T) {
		repo := new(MockSessionRepository)
		s := service.NewSessionService(repo)

		repo.On("Session", t.Context(), "ghost").
			Return(domain.Session{}, domain.ErrUnauthenticated)

		_, err := s.Session(t.Context(), "ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestSessionServiceLogout(t *testing.T) {
	repo := new(MockSessionRepository)
	s := service.NewSessionService(repo)

	repo.On("DeleteSession", t.Context(), "abc").Return(nil)
	require.NoError(t, s.Logout(t.Context(), "abc"))
}
