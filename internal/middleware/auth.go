// Package middleware holds the HTTP middleware that resolves the caller's identity.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// Authenticator attaches the bearer token's identity to the request context
type Authenticator struct {
	verifier  auth.Verifier
	onFailure func(r *http.Request)
}

// NewAuthenticator creates an Authenticator. onFailure, if set, is called for every rejected token.
func NewAuthenticator(verifier auth.Verifier, onFailure func(r *http.Request)) *Authenticator {
	return &Authenticator{verifier: verifier, onFailure: onFailure}
}

// Optional lets anonymous requests through. A token that is present but invalid is still a 401.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		r, ok := a.authenticate(w, r, token)
		if !ok {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Required rejects requests without a valid bearer token
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, ErrMsgAuthRequired)
			return
		}
		r, ok := a.authenticate(w, r, token)
		if !ok {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) authenticate(w http.ResponseWriter, r *http.Request, token string) (*http.Request, bool) {
	id, err := a.verifier.Verify(r.Context(), token)
	if err != nil {
		log := logger.FromContext(r.Context())
		if domain.KindOf(err) != domain.KindUnauthenticated {
			log.Error(LogMsgVerifyFailed, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return r, false
		}
		log.Debug(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
		if a.onFailure != nil {
			a.onFailure(r)
		}
		writeError(w, http.StatusUnauthorized, ErrMsgInvalidToken)
		return r, false
	}
	return r.WithContext(auth.WithIdentity(r.Context(), id)), true
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
	}
}
