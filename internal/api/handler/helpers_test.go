package handler

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/api/middleware"
	"github.com/yaparim/marketplace/internal/core/domain"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.JSONSerializer = StrictJSONSerializer{}
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withUser(c echo.Context, u *domain.User) echo.Context {
	middleware.SetUser(c, u)
	return c
}

func expectHTTPStatus(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != code {
		t.Fatalf("expected HTTP %d, got %v", code, err)
	}
	return he
}

var (
	ayse  = &domain.User{ID: "user-a", Name: "Ayşe", City: "Ankara", PreferredRole: domain.RolePoster}
	burak = &domain.User{ID: "user-b", Name: "Burak", City: "Ankara", PreferredRole: domain.RoleProvider}
)
