package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/service"
	"github.com/MKhiriev/bloglist/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// to a user via [service.AuthService.ResolveUser] and stores that user in the
// request context under [utils.UserCtxKey].
//
// The middleware rejects requests with HTTP 401 in the following cases:
//   - the header is absent or is not a bearer credential ("token invalid");
//   - the token is expired, forged or malformed ("token invalid");
//   - the token is valid but its user no longer exists ("user not found").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenInvalid, ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenInvalid, ErrInvalidAuthorizationHeader))
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveUser(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
