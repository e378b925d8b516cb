// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, role-based access control, logging,
// and tracing concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/utils"
	"github.com/medlink-app/medlink-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's ID under [utils.UserIDCtxKey] and the parsed
// claims under [utils.ClaimsCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token.
//   - The token is expired, malformed, wrongly signed, or carries the wrong
//     issuer or audience.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole is an HTTP middleware factory that gates a route group to the
// given roles. It must be mounted after auth, which populates the claims in
// the request context.
//
// Requests whose token role is not in roles are rejected with HTTP 403.
func (h *Handler) requireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				log.Error().Msg("no token claims in request context")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Info().Str("role", string(claims.Role)).Str("uri", r.RequestURI).Msg("insufficient role for route")
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}
