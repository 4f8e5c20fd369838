package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aqline/storefront/internal/core/port"
)

// POST   /v1/session  login by email, returns the session token
// DELETE /v1/session  logout

type SessionHandler struct {
	sessions port.SessionManager
}

func RegisterSession(
	mux *http.ServeMux,
	manager port.SessionManager,
	provider port.SessionProvider,
) {
	h := SessionHandler{manager}
	mux.HandleFunc("POST /v1/session", h.Login)
	mux.HandleFunc("DELETE /v1/session", RequireSession(provider, h.Logout))
}

func (h SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sess, err := h.sessions.Login(r.Context(), req.Email)
	if err != nil {
		log.Warn("failed to login", "err", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Token: sess.ID})
}

func (h SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Logout"
	log := slog.With("op", op)

	sess, _ := sessionFrom(r)

	if err := h.sessions.Logout(r.Context(), sess.ID); err != nil {
		log.Error("failed to logout", "err", err)
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
