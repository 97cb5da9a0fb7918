package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/activity-api/internal/errs"
	"github.com/deppfellow/activity-api/internal/lib/token"
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/labstack/echo/v4"
)

// ClaimsKey is the Echo context key holding the verified *token.Claims.
const ClaimsKey = "claims"

// Authenticator verifies an access token.
type Authenticator interface {
	Authenticate(tokenString string) (*token.Claims, error)
}

// AuthMiddleware holds the app Server so middleware can access shared deps
// like Logger and Config, and the Authenticator that verifies tokens.
type AuthMiddleware struct {
	server        *server.Server
	authenticator Authenticator
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server, authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server:        s,
		authenticator: authenticator,
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(header string) string {
	scheme, value, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(value)
}

// RequireAuth is an Echo middleware that enforces authentication.
//
//   - no bearer token: 401
//   - token that fails verification (bad signature, expired): 403
//
// On success the claims, user id and role are stored in the Echo context
// and the request logger is enriched with them.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		tokenString := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if tokenString == "" {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("missing bearer token")

			return errs.NewUnauthorizedError("Access denied. Token not found.", true)
		}

		claims, err := auth.authenticator.Authenticate(tokenString)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("token verification failed")

			return errs.NewForbiddenError("Invalid or expired token.", true).
				WithAction(&errs.Action{
					Type:    errs.ActionTypeRedirect,
					Message: "Log in again to get a new token",
					Value:   "/login",
				})
		}

		userID := strconv.Itoa(claims.UserID)

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, claims.Role)

		logger := GetLogger(c).With().
			Str("user_id", userID).
			Str("user_role", claims.Role).
			Logger()
		c.Set(LoggerKey, &logger)

		logger.Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

// RequireRole returns a middleware that lets a request through only when
// the authenticated user has the given role. It must run after RequireAuth.
func (auth *AuthMiddleware) RequireRole(role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			if user.Role(claims.Role) != role {
				GetLogger(c).Warn().
					Str("function", "RequireRole").
					Str("required_role", string(role)).
					Msg("insufficient role")

				return errs.NewForbiddenError(fmt.Sprintf("Access forbidden. This endpoint is for %s only.", role), true)
			}

			return next(c)
		}
	}
}

// GetClaims returns the verified claims stored by RequireAuth, or nil.
func GetClaims(c echo.Context) *token.Claims {
	if claims, ok := c.Get(ClaimsKey).(*token.Claims); ok {
		return claims
	}
	return nil
}
