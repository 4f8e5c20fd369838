package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

// Session-gated cart surface:
//
//	GET    /v1/cart/items
//	POST   /v1/cart/items
//	PUT    /v1/cart/items/{id}
//	DELETE /v1/cart/items/{id}
//	DELETE /v1/cart
//	POST   /v1/cart/submit

type CartHandler struct {
	carts port.CartManager
}

func RegisterCart(
	mux *http.ServeMux,
	carts port.CartManager,
	sessions port.SessionProvider,
) {
	h := CartHandler{carts}
	gate := func(next http.HandlerFunc) http.HandlerFunc {
		return RequireSession(sessions, next)
	}
	mux.HandleFunc("GET /v1/cart/items", gate(h.ViewCart))
	mux.HandleFunc("POST /v1/cart/items", gate(h.AddItem))
	mux.HandleFunc("PUT /v1/cart/items/{id}", gate(h.UpdateQuantity))
	mux.HandleFunc("DELETE /v1/cart/items/{id}", gate(h.RemoveItem))
	mux.HandleFunc("DELETE /v1/cart", gate(h.ClearCart))
	mux.HandleFunc("POST /v1/cart/submit", gate(h.SubmitOrder))
}

func (h CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ViewCart"
	log := slog.With("op", op)

	sess, _ := sessionFrom(r)

	cart, err := h.carts.ViewCart(r.Context(), sess.ID)
	if err != nil {
		log.Error("failed to load cart", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartPayload(cart))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sess, _ := sessionFrom(r)

	item := domain.CartItem{
		ProductID:    req.ID,
		SKU:          req.SKU,
		Title:        req.Title,
		Manufacturer: req.Manufacturer,
		UOM:          req.UOM,
		ImageSrc:     req.ImageSrc,
		Quantity:     req.Quantity,
	}

	cart, err := h.carts.AddItem(r.Context(), sess.ID, item)
	if err != nil {
		log.Warn("failed to add item", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartPayload(cart))
}

func (h CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateQuantity"
	log := slog.With("op", op)

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sess, _ := sessionFrom(r)
	productID := r.PathValue("id")

	cart, err := h.carts.UpdateQuantity(
		r.Context(), sess.ID, productID, req.Quantity,
	)
	if err != nil {
		log.Warn("failed to update quantity",
			"productID", productID, "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartPayload(cart))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	sess, _ := sessionFrom(r)
	productID := r.PathValue("id")

	cart, err := h.carts.RemoveItem(r.Context(), sess.ID, productID)
	if err != nil {
		log.Warn("failed to remove item", "productID", productID, "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartPayload(cart))
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ClearCart"
	log := slog.With("op", op)

	sess, _ := sessionFrom(r)

	if err := h.carts.ClearCart(r.Context(), sess.ID); err != nil {
		log.Error("failed to clear cart", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartPayload(domain.Cart{}))
}

func (h CartHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.SubmitOrder"
	log := slog.With("op", op)

	sess, _ := sessionFrom(r)

	order, err := h.carts.SubmitOrder(r.Context(), sess.ID, sess.Email)
	if err != nil {
		log.Error("failed to submit order", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitOrderResponse{
		Success: true,
		OrderID: order.ID,
	})
}
