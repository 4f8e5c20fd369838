package httphandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, "invalid media type")
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

type sessionCtxKey struct{}

// RequireSession gates a handler behind a live session. The token
// travels in the Authorization bearer header or the X-Session-Token
// header; the resolved session lands in the request context.
func RequireSession(
	sessions port.SessionProvider, next http.HandlerFunc,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			token = r.Header.Get("X-Session-Token")
		}

		sess, err := sessions.Session(r.Context(), token)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func sessionFrom(r *http.Request) (domain.Session, bool) {
	sess, ok := r.Context().Value(sessionCtxKey{}).(domain.Session)
	return sess, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(auth, prefix))
	}
	return ""
}
