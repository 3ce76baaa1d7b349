package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/api/metrics"
	"github.com/yaparim/marketplace/internal/core/ports"
)

const tokenType = "bearer"

type AuthHandler struct {
	authService    ports.AuthService
	sessionService ports.SessionService
}

func NewAuthHandler(authService ports.AuthService, sessionService ports.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessionService: sessionService}
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Phone:         req.Phone,
		City:          req.City,
		PreferredRole: req.PreferredRole,
	})
	if err != nil {
		return err
	}
	metrics.UsersRegisteredTotal.WithLabelValues(string(res.User.PreferredRole)).Inc()

	return c.JSON(http.StatusCreated, toAuthResponse("Kullanıcı başarıyla kaydedildi", res))
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAuthResponse("Giriş başarılı", res))
}

// SelectRole records the role the caller acts in for this session.
//
// @Summary      Select session role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectRoleRequest  true  "Role (poster or provider)"
// @Success      201   {object}  selectRoleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/select-role [post]
func (h *AuthHandler) SelectRole(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req selectRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sel, err := h.sessionService.RecordRoleSelection(c.Request().Context(), user.ID, req.Role)
	if err != nil {
		return err
	}
	metrics.RoleSelectionsTotal.WithLabelValues(string(sel.Role)).Inc()

	return c.JSON(http.StatusCreated, selectRoleResponse{
		Message:     "Rol seçimi başarılı",
		SessionID:   sel.ID,
		CurrentRole: sel.Role,
	})
}

// Profile returns the caller's public profile.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/user/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.Profile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

func toAuthResponse(msg string, res *ports.AuthResult) authResponse {
	return authResponse{
		Message:     msg,
		AccessToken: res.Token,
		TokenType:   tokenType,
		ExpiresAt:   res.ExpiresAt,
		User:        res.User,
	}
}
