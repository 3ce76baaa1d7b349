package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/api/middleware"
	"github.com/yaparim/marketplace/internal/core/domain"
)

// currentUser returns the caller resolved by the Auth middleware. A missing
// user means the route was wired without Auth; reject with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// bindAndValidate decodes the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
