package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// RequireRoles allows the request through only when the authenticated role is
// one of allowed. It must be mounted after Auth.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	roles := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		roles[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.NewAuthError("missing or invalid Authorization header")
			}
			if _, ok := roles[identity.Role]; !ok {
				return domain.NewAuthzError(fmt.Sprintf("role '%s' is not authorized to access this route", identity.Role))
			}
			return next(c)
		}
	}
}
