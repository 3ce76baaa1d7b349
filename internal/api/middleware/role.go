package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// RoleResolver reports the role a user is currently acting in.
type RoleResolver interface {
	CurrentRole(ctx context.Context, user *domain.User) (domain.Role, error)
}

// RequireRole admits callers whose current role allows target. It must run
// after Auth.
func RequireRole(roles RoleResolver, target domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFromContext(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			current, err := roles.CurrentRole(c.Request().Context(), user)
			if err != nil {
				return err
			}
			if !current.Allows(target) {
				return domain.ErrRoleNotSelected
			}
			return next(c)
		}
	}
}
