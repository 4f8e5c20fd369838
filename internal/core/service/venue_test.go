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

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) VenueProducts(
	ctx context.Context, venueID string,
) (domain.Venue, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).(domain.Venue), args.Error(1)
}

func TestVenueServiceVenueProducts(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		repo := new(MockVenueRepository)
		s := service.NewVenueService(repo)

		price := 12.5
		want := domain.Venue{
			ID:   "7",
			Name: "Harbor Grill",
			Products: []domain.VenueProduct{
				{Product: domain.Product{ID: "100"}, Price: &price},
			},
		}
		repo.On("VenueProducts", t.Context(), "7").Return(want, nil)

		v, err := s.VenueProducts(t.Context(), "7")
		require.NoError(t, err)
		assert.Equal(t, want, v)
	})

	t.Run("EmptyID", func(t *testing.T) {
		repo := new(MockVenueRepository)
		s := service.NewVenueService(repo)

		_, err := s.VenueProducts(t.Context(), "  ")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "VenueProducts")
	})

	t.Run("UnknownVenue", func(t *testing.T) {
		repo := new(MockVenueRepository)
		s := service.NewVenueService(repo)

		repo.On("VenueProducts", t.Context(), "404").
			Return(domain.Venue{}, domain.ErrNotFound)

		_, err := s.VenueProducts(t.Context(), "404")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
