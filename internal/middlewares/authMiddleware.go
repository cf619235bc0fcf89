package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"linkstash/internal/utils"
)

// NewAuthMiddleware verifies the session JWT (cookie set by the OAuth
// callback, or an Authorization bearer header) and injects the user id into
// the request context. Any failure is treated as "no session": 401, no retry.
func NewAuthMiddleware(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(jwtSecret) == 0 {
				log.Error().Msg("JWT secret is not configured, authentication will fail")
				utils.SendJSONError(w, "Server configuration error", http.StatusInternalServerError)
				return
			}

			tokenString := bearerToken(r)
			if tokenString == "" {
				utils.SendJSONError(w, "Not signed in", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ParseJWT(tokenString, jwtSecret)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected invalid session token")
				utils.SendJSONError(w, "Invalid session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), utils.UserIDContextKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if cookie, err := r.Cookie("jwt"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	return ""
}
