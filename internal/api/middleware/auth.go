package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"

	// AccessTokenCookie and RefreshTokenCookie are the session cookie names
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *security.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *security.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Authenticate validates the access token from the accessToken cookie or the
// Authorization header, in that order
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(r)
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		claims, err := m.jwtManager.ValidateAccessToken(token)
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected access token")
			response.Unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireTypes rejects callers whose type claim is not in types. It must run
// after Authenticate.
func RequireTypes(types ...domain.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				response.Unauthorized(w, "unauthorized")
				return
			}

			for _, t := range types {
				if claims.Type == t {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "access denied")
		})
	}
}

func accessToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetClaims gets the validated token claims from context
func GetClaims(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*security.Claims)
	return claims, ok
}

// GetCaller gets the authenticated identity from context
func GetCaller(ctx context.Context) (dto.Caller, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return dto.Caller{}, false
	}
	return dto.Caller{UserID: claims.UserID.String(), Type: string(claims.Type)}, true
}
