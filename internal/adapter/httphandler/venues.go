package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/aqline/storefront/internal/core/port"
)

// GET /v1/venues/{id}/products  session-gated priced listing

type VenuesHandler struct {
	venues port.VenueViewer
}

func RegisterVenues(
	mux *http.ServeMux,
	venues port.VenueViewer,
	sessions port.SessionProvider,
) {
	h := VenuesHandler{venues}
	mux.HandleFunc("GET /v1/venues/{id}/products",
		RequireSession(sessions, h.VenueProducts))
}

func (h VenuesHandler) VenueProducts(w http.ResponseWriter, r *http.Request) {
	const op = "VenuesHandler.VenueProducts"
	log := slog.With("op", op)

	venueID := r.PathValue("id")

	venue, err := h.venues.VenueProducts(r.Context(), venueID)
	if err != nil {
		log.Warn("failed to load venue products",
			"venueID", venueID, "err", err)
		writeDomainError(w, err)
		return
	}

	res := VenueResponse{
		Success:   true,
		VenueName: venue.Name,
		Products:  make([]VenueProduct, len(venue.Products)),
	}
	for i, vp := range venue.Products {
		res.Products[i] = VenueProduct{
			Product: toProductPayload(vp.Product),
			Price:   vp.Price,
		}
	}

	writeJSON(w, http.StatusOK, res)
}
