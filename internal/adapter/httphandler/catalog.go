package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aqline/storefront/internal/core/port"
	"github.com/aqline/storefront/pkg/filterquery"
	"github.com/aqline/storefront/pkg/paging"
)

// GET  /v1/products                list with filters + pagination
// GET  /v1/products/search?q=term  search-scoped list
// GET  /v1/products/options        full-catalog facet options
// GET  /v1/products/{sku}          single product with images
// POST /v1/products/bulk           lookup by id list (empty = all)
// POST /v1/products                bulk upsert (ingest)

type CatalogHandler struct {
	browser  port.CatalogBrowser
	ingester port.ProductsIngester
}

func RegisterCatalog(
	mux *http.ServeMux,
	browser port.CatalogBrowser,
	ingester port.ProductsIngester,
) {
	h := CatalogHandler{browser, ingester}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/search", h.SearchProducts)
	mux.HandleFunc("GET /v1/products/options", h.FacetOptions)
	mux.HandleFunc("GET /v1/products/{sku}", h.ProductBySKU)
	mux.HandleFunc("POST /v1/products/bulk", h.BulkLookup)
	mux.HandleFunc("POST /v1/products", h.IngestProducts)
}

func (h CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListProducts"
	log := slog.With("op", op)

	selection := filterquery.Decode(r.URL.Query())

	page, err := h.browser.Browse(r.Context(), selection.Query())
	if err != nil {
		log.Error("failed to browse catalog", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(page))
}

func (h CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.SearchProducts"
	log := slog.With("op", op)

	selection := filterquery.Decode(r.URL.Query())

	page, err := h.browser.Search(r.Context(), selection.Query())
	if err != nil {
		log.Error("failed to search catalog", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(page))
}

func (h CatalogHandler) FacetOptions(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.FacetOptions"
	log := slog.With("op", op)

	opts, err := h.browser.Options(r.Context())
	if err != nil {
		log.Error("failed to load facet options", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OptionsResponse{
		Success: true,
		Options: toFacetPayload(opts),
	})
}

func (h CatalogHandler) ProductBySKU(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ProductBySKU"
	log := slog.With("op", op)

	sku := r.PathValue("sku")

	p, err := h.browser.FindBySKU(r.Context(), sku)
	if err != nil {
		log.Warn("failed to find product", "sku", sku, "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductPayload(p))
}

func (h CatalogHandler) BulkLookup(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.BulkLookup"
	log := slog.With("op", op)

	var req BulkLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			"invalid request format, expected 'ids' to be an array")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	ps, err := h.browser.Lookup(r.Context(), req.IDs)
	if err != nil {
		log.Error("failed to lookup products", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, BulkLookupResponse{
		Success:  true,
		Products: toProductPayloads(ps),
	})
}

func (h CatalogHandler) IngestProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.IngestProducts"
	log := slog.With("op", op)

	var payload []Product
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	ps := toDomainProducts(payload)
	if err := h.ingester.Ingest(r.Context(), ps); err != nil {
		log.Error("failed to ingest products", "err", err)
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	log.Info("accepted", "nProducts", len(ps))
}

func toListResponse(page port.CatalogPage) ListResponse {
	return ListResponse{
		Success:    true,
		Products:   toProductPayloads(page.Products),
		Pagination: page.Pagination,
		Filters:    toFacetPayload(page.Facets),
		PageWindow: paging.Window(
			paging.Clamp(page.Pagination.Page, page.Pagination.TotalPages),
			page.Pagination.TotalPages,
		),
	}
}
