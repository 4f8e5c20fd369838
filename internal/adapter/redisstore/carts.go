package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.CartRepository = (*CartsRepository)(nil)

type cartLine struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	Manufacturer string `json:"manufacturer"`
	UOM          string `json:"uom"`
	ImageSrc     string `json:"image_src"`
	Quantity     int    `json:"quantity"`
}

type CartsRepository struct {
	cl  Client
	ttl time.Duration
}

func NewCartsRepository(cl Client, ttl time.Duration) CartsRepository {
	return CartsRepository{cl, ttl}
}

// Cart loads the session's cart; a missing key is an empty cart, not
// an error.
func (r CartsRepository) Cart(
	ctx context.Context, sessionID string,
) (domain.Cart, error) {
	const op = "CartsRepository.Cart"

	cart := domain.Cart{SessionID: sessionID}

	b, err := r.cl.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart, nil
		}
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	var lines []cartLine
	if err := json.Unmarshal(b, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, l := range lines {
		cart.Items = append(cart.Items, domain.CartItem(l))
	}
	return cart, nil
}

func (r CartsRepository) SaveCart(
	ctx context.Context, cart domain.Cart,
) error {
	const op = "CartsRepository.SaveCart"

	lines := make([]cartLine, len(cart.Items))
	for i, it := range cart.Items {
		lines[i] = cartLine(it)
	}

	b, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = r.cl.Set(ctx, cartKey(cart.SessionID), b, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartsRepository) DeleteCart(
	ctx context.Context, sessionID string,
) error {
	const op = "CartsRepository.DeleteCart"

	if err := r.cl.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
