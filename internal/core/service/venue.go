package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

var _ port.VenueViewer = (*VenueService)(nil)

// VenueService serves the venue-scoped priced listings.
type VenueService struct {
	repo port.VenueRepository
}

func NewVenueService(repo port.VenueRepository) VenueService {
	return VenueService{repo}
}

func (s VenueService) VenueProducts(
	ctx context.Context, venueID string,
) (domain.Venue, error) {
	const op = "VenueService.VenueProducts"

	if strings.TrimSpace(venueID) == "" {
		return domain.Venue{}, fmt.Errorf(
			"%s: empty venue id: %w", op, domain.ErrValidation,
		)
	}

	v, err := s.repo.VenueProducts(ctx, venueID)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}
