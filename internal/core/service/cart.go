package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

var _ port.CartManager = (*CartService)(nil)

// CartService owns the cart lifecycle: created empty at session start,
// mutated by add/update/remove, torn down on successful submission or
// explicit clear. A failed submission leaves the cart intact for retry.
type CartService struct {
	carts    port.CartRepository
	orders   port.OrderRepository
	producer port.OrdersProducer
}

func NewCartService(
	carts port.CartRepository,
	orders port.OrderRepository,
	producer port.OrdersProducer,
) CartService {
	return CartService{carts, orders, producer}
}

func (s CartService) ViewCart(
	ctx context.Context, sessionID string,
) (domain.Cart, error) {
	const op = "CartService.ViewCart"

	cart, err := s.carts.Cart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) AddItem(
	ctx context.Context, sessionID string, item domain.CartItem,
) (domain.Cart, error) {
	const op = "CartService.AddItem"

	if item.ProductID == "" {
		return domain.Cart{}, fmt.Errorf(
			"%s: empty product id: %w", op, domain.ErrValidation,
		)
	}
	if item.Quantity < 1 {
		return domain.Cart{}, fmt.Errorf(
			"%s: quantity below 1: %w", op, domain.ErrValidation,
		)
	}

	cart, err := s.carts.Cart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart.Add(item)

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) UpdateQuantity(
	ctx context.Context, sessionID, productID string, qty int,
) (domain.Cart, error) {
	const op = "CartService.UpdateQuantity"

	if qty < 1 {
		return domain.Cart{}, fmt.Errorf(
			"%s: quantity below 1: %w", op, domain.ErrValidation,
		)
	}

	cart, err := s.carts.Cart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if !cart.SetQuantity(productID, qty) {
		return domain.Cart{}, fmt.Errorf(
			"%s: no cart line for product %s: %w",
			op, productID, domain.ErrNotFound,
		)
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) RemoveItem(
	ctx context.Context, sessionID, productID string,
) (domain.Cart, error) {
	const op = "CartService.RemoveItem"

	cart, err := s.carts.Cart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if !cart.Remove(productID) {
		return domain.Cart{}, fmt.Errorf(
			"%s: no cart line for product %s: %w",
			op, productID, domain.ErrNotFound,
		)
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) ClearCart(ctx context.Context, sessionID string) error {
	const op = "CartService.ClearCart"

	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SubmitOrder stores the cart as an order and clears the cart. The
// store is the all-or-nothing step: if it fails the cart is left
// untouched and the caller may retry. The submitted event is emitted
// best-effort after the store succeeds.
func (s CartService) SubmitOrder(
	ctx context.Context, sessionID, customerEmail string,
) (domain.Order, error) {
	const op = "CartService.SubmitOrder"
	log := slog.With("op", op)

	if !strings.Contains(customerEmail, "@") {
		return domain.Order{}, fmt.Errorf(
			"%s: invalid customer email: %w", op, domain.ErrValidation,
		)
	}

	cart, err := s.carts.Cart(ctx, sessionID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if cart.Empty() {
		return domain.Order{}, fmt.Errorf(
			"%s: cart is empty: %w", op, domain.ErrValidation,
		)
	}

	order := s.toOrder(cart, customerEmail)

	orderID, err := s.orders.StoreOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	order.ID = orderID

	if err := s.producer.ProduceOrder(ctx, order); err != nil {
		log.Error("failed to produce order event",
			"orderID", orderID, "err", err)
	}

	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		log.Error("failed to clear cart after submission",
			"sessionID", sessionID, "err", err)
	}

	log.Info("order submitted", "orderID", orderID, "nLines", len(order.Lines))
	return order, nil
}

func (CartService) toOrder(
	cart domain.Cart, customerEmail string,
) domain.Order {
	order := domain.Order{
		CustomerEmail: customerEmail,
		SubmittedAt:   time.Now().UTC(),
	}
	for _, it := range cart.Items {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID:    it.ProductID,
			SKU:          it.SKU,
			Title:        it.Title,
			Manufacturer: it.Manufacturer,
			UOM:          it.UOM,
			Quantity:     it.Quantity,
		})
	}
	return order
}
