package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/yaparim/marketplace/docs"
	"github.com/yaparim/marketplace/internal/api/handler"
	"github.com/yaparim/marketplace/internal/api/middleware"
	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
	"github.com/yaparim/marketplace/internal/infrastructure/http/handlers"
)

// Dependencies are the services and settings the router wires into routes.
type Dependencies struct {
	Auth         ports.AuthService
	Sessions     ports.SessionService
	Tasks        ports.TaskService
	Applications ports.ApplicationService
	Stats        ports.StatsService
	Catalog      *domain.Catalog

	// Checks back GET /health/ready, keyed by dependency name.
	Checks map[string]handlers.Check
	Logger zerolog.Logger

	CORSAllowedOrigins []string
	// EnforceSessionRole gates task creation on the poster role and
	// applying on the provider role.
	EnforceSessionRole bool

	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.JSONSerializer = handler.StrictJSONSerializer{}
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	appHandler := handler.NewApplicationHandler(deps.Applications)
	refHandler := handler.NewReferenceHandler(deps.Catalog, deps.Stats)
	requireAuth := middleware.Auth(deps.Auth)

	posterOnly := []echo.MiddlewareFunc{requireAuth}
	providerOnly := []echo.MiddlewareFunc{requireAuth}
	if deps.EnforceSessionRole {
		posterOnly = append(posterOnly, middleware.RequireRole(deps.Sessions, domain.RolePoster))
		providerOnly = append(providerOnly, middleware.RequireRole(deps.Sessions, domain.RoleProvider))
	}

	// --- Public reference routes ---
	e.GET("/", refHandler.Root)

	api := e.Group("/api")
	api.GET("/cities", refHandler.Cities)
	api.GET("/categories", refHandler.Categories)
	api.GET("/stats", refHandler.Stats)

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/select-role", authHandler.SelectRole, requireAuth)

	// --- User routes ---
	api.GET("/user/profile", authHandler.Profile, requireAuth)
	api.GET("/user/tasks", appHandler.ListForUser, requireAuth)

	// --- Task routes ---
	api.GET("/tasks", taskHandler.List)
	api.POST("/tasks", taskHandler.Create, posterOnly...)
	api.GET("/tasks/:id", taskHandler.Get)
	api.POST("/tasks/:id/apply", appHandler.Apply, providerOnly...)
	api.GET("/tasks/:id/applications", appHandler.ListForTask, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler(time.Now())
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
