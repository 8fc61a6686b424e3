package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/token"
)

const identityKey = "identity"

// Auth verifies the bearer token and injects the caller identity into the
// request context. The scheme check is case sensitive: only "Bearer " is
// accepted.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return domain.NewAuthError("missing or invalid Authorization header")
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				return err
			}

			userID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				return domain.NewAuthError("invalid user id in token")
			}

			c.Set(identityKey, domain.Identity{UserID: userID, Role: claims.Role})
			return next(c)
		}
	}
}

// IdentityFrom reads the identity set by Auth. ok is false when the request
// never went through the middleware.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
