package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

var _ port.SessionManager = (*SessionService)(nil)
var _ port.SessionProvider = (*SessionService)(nil)

// SessionService issues and resolves opaque client sessions.
type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) SessionService {
	return SessionService{repo}
}

func (s SessionService) Login(
	ctx context.Context, email string,
) (domain.Session, error) {
	const op = "SessionService.Login"

	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return domain.Session{}, fmt.Errorf(
			"%s: invalid email: %w", op, domain.ErrValidation,
		)
	}

	sess, err := s.repo.CreateSession(ctx, email)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s SessionService) Logout(ctx context.Context, sessionID string) error {
	const op = "SessionService.Logout"

	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s SessionService) Session(
	ctx context.Context, sessionID string,
) (domain.Session, error) {
	const op = "SessionService.Session"

	if sessionID == "" {
		return domain.Session{}, fmt.Errorf(
			"%s: %w", op, domain.ErrUnauthenticated,
		)
	}

	sess, err := s.repo.Session(ctx, sessionID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}
