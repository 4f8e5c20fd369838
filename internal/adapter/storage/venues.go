package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

var _ port.VenueRepository = (*VenuesRepository)(nil)

type VenuesRepository struct {
	sqldb sqldb
}

func NewVenuesRepository(sqldb sqldb) VenuesRepository {
	return VenuesRepository{sqldb}
}

// VenueProducts returns the venue-scoped priced listing. Prices exist
// only in venue_products, never in the general catalog projection.
func (r VenuesRepository) VenueProducts(
	ctx context.Context, venueID string,
) (domain.Venue, error) {
	const op = "VenuesRepository.VenueProducts"

	if err := ctx.Err(); err != nil {
		return domain.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := widenIDs([]string{venueID}); err != nil {
		return domain.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	v := domain.Venue{ID: venueID}
	err := r.sqldb.QueryRowContext(ctx,
		"SELECT name FROM venues WHERE id = $1::numeric", venueID,
	).Scan(&v.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Venue{}, fmt.Errorf(
				"%s: venue %q: %w", op, venueID, domain.ErrNotFound,
			)
		}
		return domain.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		SELECT %s, vp.price
		FROM venue_products vp
		JOIN products ON products.id = vp.product_id
		WHERE vp.venue_id = $1::numeric
		ORDER BY title ASC`, productColumns,
	)

	rows, err := r.sqldb.QueryContext(ctx, query, venueID)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	var items []domain.Product
	var prices []*float64
	for rows.Next() {
		var p domain.Product
		var qty sql.NullInt64
		var price sql.NullFloat64
		err := rows.Scan(
			&p.ID, &p.SKU, &p.Title, &p.Description, &p.Manufacturer,
			&p.Category, &p.UOM, &qty, &p.Tags, &price,
		)
		if err != nil {
			return domain.Venue{}, fmt.Errorf("%s: failed to scan: %w", op, err)
		}
		if qty.Valid {
			n := int(qty.Int64)
			p.QtyAvailable = &n
		}
		items = append(items, p)
		if price.Valid {
			f := price.Float64
			prices = append(prices, &f)
		} else {
			prices = append(prices, nil)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	productsRepo := NewProductsRepository(r.sqldb)
	if err := productsRepo.attachImages(ctx, items); err != nil {
		return domain.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	v.Products = make([]domain.VenueProduct, len(items))
	for i := range items {
		v.Products[i] = domain.VenueProduct{
			Product: items[i],
			Price:   prices[i],
		}
	}
	return v, nil
}
