package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
	"github.com/aqline/storefront/pkg/filterquery"
	"github.com/aqline/storefront/pkg/paging"
)

var _ port.CatalogBrowser = (*CatalogService)(nil)
var _ port.ProductsIngester = (*CatalogService)(nil)

// CatalogService serves catalog browsing, search and bulk lookup.
//
// Browsing accumulates facet options as a set union across successive
// queries so the sidebar never loses options as a client filters
// deeper; search returns options scoped to the current term only. The
// two behaviors intentionally diverge per calling surface.
type CatalogService struct {
	repo port.CatalogRepository

	mu          sync.Mutex
	knownFacets domain.FacetOptions
}

func NewCatalogService(repo port.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Browse(
	ctx context.Context, q domain.CatalogQuery,
) (port.CatalogPage, error) {
	const op = "CatalogService.Browse"

	if err := ctx.Err(); err != nil {
		return port.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	q = normalizeQuery(q)
	items, total, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return port.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	page := port.CatalogPage{
		Products:   items,
		Pagination: paging.New(total, q.Page, q.PageSize),
		Facets:     s.accumulateFacets(domain.CollectFacetOptions(items)),
	}
	return page, nil
}

func (s *CatalogService) Search(
	ctx context.Context, q domain.CatalogQuery,
) (port.CatalogPage, error) {
	const op = "CatalogService.Search"

	if err := ctx.Err(); err != nil {
		return port.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	q = normalizeQuery(q)
	if strings.TrimSpace(q.Search) == "" {
		return port.CatalogPage{
			Pagination: paging.New(0, 1, q.PageSize),
		}, nil
	}

	items, total, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return port.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	page := port.CatalogPage{
		Products:   items,
		Pagination: paging.New(total, q.Page, q.PageSize),
		Facets:     domain.CollectFacetOptions(items),
	}
	return page, nil
}

func (s *CatalogService) Options(
	ctx context.Context,
) (domain.FacetOptions, error) {
	const op = "CatalogService.Options"

	opts, err := s.repo.FacetOptions(ctx)
	if err != nil {
		return domain.FacetOptions{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.accumulateFacets(opts), nil
}

func (s *CatalogService) FindBySKU(
	ctx context.Context, sku string,
) (domain.Product, error) {
	const op = "CatalogService.FindBySKU"

	if strings.TrimSpace(sku) == "" {
		return domain.Product{}, fmt.Errorf(
			"%s: empty sku: %w", op, domain.ErrValidation,
		)
	}

	p, err := s.repo.ProductBySKU(ctx, sku)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Lookup resolves products by external identifier list. An empty list
// falls back to the whole catalog: callers rely on
// empty-list-means-unfiltered.
func (s *CatalogService) Lookup(
	ctx context.Context, ids []string,
) ([]domain.Product, error) {
	const op = "CatalogService.Lookup"

	ps, err := s.repo.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s *CatalogService) Ingest(
	ctx context.Context, ps []domain.Product,
) error {
	const op = "CatalogService.Ingest"

	if len(ps) == 0 {
		return fmt.Errorf("%s: no products: %w", op, domain.ErrValidation)
	}

	if err := s.repo.UpsertProducts(ctx, ps); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CatalogService) accumulateFacets(
	current domain.FacetOptions,
) domain.FacetOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knownFacets = s.knownFacets.Merge(current)
	return s.knownFacets
}

func normalizeQuery(q domain.CatalogQuery) domain.CatalogQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = filterquery.DefaultPageSize
	}
	return q
}
