package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the caller address in the
// request context under [utils.CallerCtxKey]. The request logger is
// replaced by a child tagged with the caller.
//
// Requests are rejected with 401 Unauthorized when the header is absent,
// malformed, or carries an expired or invalid token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.CallerCtxKey, token.Caller)
		log := logger.FromRequest(r).WithCaller(token.Caller)
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
