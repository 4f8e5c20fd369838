package redisstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.SessionRepository = (*SessionsRepository)(nil)

type sessionValue struct {
	Email string `json:"email"`
}

type SessionsRepository struct {
	cl  Client
	ttl time.Duration
}

func NewSessionsRepository(cl Client, ttl time.Duration) SessionsRepository {
	return SessionsRepository{cl, ttl}
}

func (r SessionsRepository) CreateSession(
	ctx context.Context, email string,
) (domain.Session, error) {
	const op = "SessionsRepository.CreateSession"

	id, err := newSessionID()
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	b, _ := json.Marshal(sessionValue{Email: email})
	err = r.cl.Set(ctx, sessionKey(id), b, r.ttl).Err()
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Session{ID: id, Email: email}, nil
}

func (r SessionsRepository) Session(
	ctx context.Context, sessionID string,
) (domain.Session, error) {
	const op = "SessionsRepository.Session"

	b, err := r.cl.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, fmt.Errorf(
				"%s: %w", op, domain.ErrUnauthenticated,
			)
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	var v sessionValue
	if err := json.Unmarshal(b, &v); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	// sliding expiration: a live session stays live while in use
	r.cl.Expire(ctx, sessionKey(sessionID), r.ttl)

	return domain.Session{ID: sessionID, Email: v.Email}, nil
}

func (r SessionsRepository) DeleteSession(
	ctx context.Context, sessionID string,
) error {
	const op = "SessionsRepository.DeleteSession"

	if err := r.cl.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
