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
	"github.com/aqline/storefront/internal/core/port"
	"github.com/aqline/storefront/pkg/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogBrowser struct {
	mock.Mock
}

func (m *MockCatalogBrowser) Browse(
	ctx context.Context, q domain.CatalogQuery,
) (port.CatalogPage, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(port.CatalogPage), args.Error(1)
}

func (m *MockCatalogBrowser) Search(
	ctx context.Context, q domain.CatalogQuery,
) (port.CatalogPage, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(port.CatalogPage), args.Error(1)
}

func (m *MockCatalogBrowser) Options(
	ctx context.Context,
) (domain.FacetOptions, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FacetOptions), args.Error(1)
}

func (m *MockCatalogBrowser) FindBySKU(
	ctx context.Context, sku string,
) (domain.Product, error) {
	args := m.Called(ctx, sku)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogBrowser) Lookup(
	ctx context.Context, ids []string,
) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]domain.Product)
	return items, args.Error(1)
}

type MockProductsIngester struct {
	mock.Mock
}

func (m *MockProductsIngester) Ingest(
	ctx context.Context, ps []domain.Product,
) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func newCatalogMux(
	browser *MockCatalogBrowser, ingester *MockProductsIngester,
) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, browser, ingester)
	return mux
}

func TestListProducts(t *testing.T) {
	t.Run("DecodesFilterQuery", func(t *testing.T) {
		browser := new(MockCatalogBrowser)
		mux := newCatalogMux(browser, nil)

		wantQuery := domain.CatalogQuery{
			Categories: []string{"Glassware"},
			Page:       2,
			PageSize:   24,
		}
		page := port.CatalogPage{
			Products:   []domain.Product{{ID: "100", SKU: "SKU-100"}},
			Pagination: paging.New(30, 2, 24),
		}
		browser.On("Browse", mock.Anything, wantQuery).Return(page, nil)

		req := httptest.NewRequest(
			http.MethodGet, "/v1/products?category=Glassware&page=2", nil,
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var res httphandler.ListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.True(t, res.Success)
		require.Len(t, res.Products, 1)
		assert.Equal(t, "100", res.Products[0].TrxProductID)
		assert.Equal(t, 2, res.Pagination.TotalPages)
		assert.Equal(t, []paging.Entry{1, 2}, res.PageWindow)
	})

	t.Run("ServiceError", func(t *testing.T) {
		browser := new(MockCatalogBrowser)
		mux := newCatalogMux(browser, nil)

		browser.On("Browse", mock.Anything, mock.Anything).
			Return(port.CatalogPage{}, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestSearchProducts(t *testing.T) {
	browser := new(MockCatalogBrowser)
	mux := newCatalogMux(browser, nil)

	wantQuery := domain.CatalogQuery{
		Search: "tumbler", Page: 1, PageSize: 24,
	}
	page := port.CatalogPage{Pagination: paging.New(0, 1, 24)}
	browser.On("Search", mock.Anything, wantQuery).Return(page, nil)

	req := httptest.NewRequest(
		http.MethodGet, "/v1/products/search?q=tumbler", nil,
	)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	browser.AssertCalled(t, "Search", mock.Anything, wantQuery)
}

func TestFacetOptions(t *testing.T) {
	browser := new(MockCatalogBrowser)
	mux := newCatalogMux(browser, nil)

	browser.On("Options", mock.Anything).Return(domain.FacetOptions{
		Categories:    []string{"Glassware"},
		HasStockItems: true,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/options", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res httphandler.OptionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, []string{"Glassware"}, res.Options.Categories)
	assert.NotNil(t, res.Options.Patterns)
	assert.True(t, res.Options.HasStockItems)
}

func TestProductBySKU(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		browser := new(MockCatalogBrowser)
		mux := newCatalogMux(browser, nil)

		p := domain.Product{
			ID: "100", SKU: "SKU-100", Title: "Tumbler",
			Images: []domain.ProductImage{{Src: "img.jpg"}},
		}
		browser.On("FindBySKU", mock.Anything, "SKU-100").Return(p, nil)

		req := httptest.NewRequest(
			http.MethodGet, "/v1/products/SKU-100", nil,
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var res httphandler.Product
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "100", res.TrxProductID)
		require.Len(t, res.Images, 1)
		assert.Equal(t, "img.jpg", res.Images[0].Src)
	})

	t.Run("NotFound", func(t *testing.T) {
		browser := new(MockCatalogBrowser)
		mux := newCatalogMux(browser, nil)

		browser.On("FindBySKU", mock.Anything, "SKU-404").
			Return(domain.Product{}, domain.ErrNotFound)

		req := httptest.NewRequest(
			http.MethodGet, "/v1/products/SKU-404", nil,
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBulkLookup(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		browser := new(MockCatalogBrowser)
		mux := newCatalogMux(browser, nil)

		browser.On("Lookup", mock.Anything, []string{"100", "200"}).
			Return([]domain.Product{{ID: "100"}, {ID: "200"}}, nil)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/products/bulk",
			strings.NewReader(`{"ids":["100","200"]}`),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var res httphandler.BulkLookupResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Len(t, res.Products, 2)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		browser := new(MockCatalogBrowser)
		mux := newCatalogMux(browser, nil)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/products/bulk",
			strings.NewReader(`{"ids": oops}`),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIngestProducts(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		ingester := new(MockProductsIngester)
		mux := newCatalogMux(nil, ingester)

		ingester.On("Ingest", mock.Anything, mock.Anything).Return(nil)

		body := `[{"trx_product_id":"100","sku":"SKU-100","title":"Tumbler"}]`
		req := httptest.NewRequest(
			http.MethodPost, "/v1/products", strings.NewReader(body),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		ingester := new(MockProductsIngester)
		mux := newCatalogMux(nil, ingester)

		ingester.On("Ingest", mock.Anything, mock.Anything).
			Return(domain.ErrValidation)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/products", strings.NewReader(`[]`),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
