// Package redisstore keeps session-scoped state (sessions, carts) in
// Redis. Keys expire with the session TTL, matching the cart's
// lifecycle of living only as long as the client session.
package redisstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	*redis.Client
}

func NewClient(ctx context.Context, url string) (Client, error) {
	const op = "redisstore.NewClient"
	log := slog.With("op", op)

	opts, err := redis.ParseURL(url)
	if err != nil {
		return Client{}, fmt.Errorf("%s: invalid url: %w", op, err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	cl := redis.NewClient(opts)
	if err := cl.Ping(ctx).Err(); err != nil {
		return Client{}, fmt.Errorf("%s: redis is unavailable: %w", op, err)
	}

	log.Info("redis is available")
	return Client{cl}, nil
}

func (c Client) Close() {
	const op = "redisstore.Client.Close"
	log := slog.With("op", op)

	log.Info("closing redis client...")

	if err := c.Client.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("redis client is closed")
}
