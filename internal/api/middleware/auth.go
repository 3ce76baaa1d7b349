package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/core/domain"
)

const userKey = "user"

// TokenResolver turns a bearer token into the user it was issued to.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the bearer token and injects the resolved user into context.
// A valid token whose subject no longer exists surfaces as ErrUserNotFound.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.ResolveToken(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
				}
				return err
			}

			SetUser(c, user)
			return next(c)
		}
	}
}

// SetUser stores the authenticated user on the request context.
func SetUser(c echo.Context, user *domain.User) {
	c.Set(userKey, user)
}

// UserFromContext returns the user injected by Auth, or nil outside an
// authenticated route.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userKey).(*domain.User)
	return user
}
