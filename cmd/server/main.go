// @title                       YAPARIM Marketplace API
// @version                     1.0
// @description                 Local-services marketplace: tasks, applications and accounts.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/yaparim/marketplace/internal/api"
	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/service"
	redisstore "github.com/yaparim/marketplace/internal/infrastructure/db/redis"
	"github.com/yaparim/marketplace/internal/infrastructure/http"
	"github.com/yaparim/marketplace/internal/pkg/config"
	"github.com/yaparim/marketplace/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "yaparim-api",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found; relying on existing environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = randomSecret()
		log.Warn().Msg("JWT_SECRET is not set; using a random per-process key, tokens will not survive a restart")
	}

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	var cache service.StatsCache
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable; stats cache disabled")
		} else {
			defer rdb.Close()
			cache = redisstore.NewStatsCache(rdb, cfg.Redis.StatsTTL)
			st.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	catalog := domain.DefaultCatalog()
	authService := service.NewAuthService(st.users, catalog, jwtSecret, cfg.TokenTTL, logger.Component("auth"))
	sessionService := service.NewSessionService(st.sessions, logger.Component("sessions"))
	taskService := service.NewTaskService(st.tasks, catalog, logger.Component("tasks"))
	applicationService := service.NewApplicationService(st.tasks, st.applications, logger.Component("applications"))
	statsService := service.NewStatsService(st.stats, cache, logger.Component("stats"))

	router := api.NewRouter(api.Dependencies{
		Auth:               authService,
		Sessions:           sessionService,
		Tasks:              taskService,
		Applications:       applicationService,
		Stats:              statsService,
		Catalog:            catalog,
		Checks:             st.checks,
		Logger:             logger.Component("http"),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		EnforceSessionRole: cfg.EnforceSessionRole,
	})

	srv := http.NewServer(router, net.JoinHostPort("", cfg.Port), log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	log.Info().
		Str("env", cfg.Env).
		Str("store", cfg.StoreDriver).
		Bool("stats_cache", cache != nil).
		Bool("enforce_session_role", cfg.EnforceSessionRole).
		Msg("YAPARIM API started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}
