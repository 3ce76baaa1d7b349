package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yaparim/marketplace/internal/core/ports"
	"github.com/yaparim/marketplace/internal/infrastructure/db/memory"
	"github.com/yaparim/marketplace/internal/infrastructure/db/mongo"
	"github.com/yaparim/marketplace/internal/infrastructure/db/postgres"
	"github.com/yaparim/marketplace/internal/infrastructure/http/handlers"
	"github.com/yaparim/marketplace/internal/pkg/config"
)

// store bundles the repositories of the selected driver.
type store struct {
	users        ports.UserRepository
	sessions     ports.SessionRepository
	tasks        ports.TaskRepository
	applications ports.ApplicationRepository
	stats        ports.StatsRepository

	checks map[string]handlers.Check
	close  func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
		return &store{
			users:        mongo.NewUserRepository(db),
			sessions:     mongo.NewSessionRepository(db),
			tasks:        mongo.NewTaskRepository(db),
			applications: mongo.NewApplicationRepository(db),
			stats:        mongo.NewStatsRepository(db),
			checks: map[string]handlers.Check{
				"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			},
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case config.DriverPostgres:
		pg, err := postgres.Open(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("connected to postgres")
		return &store{
			users:        pg.Users(),
			sessions:     pg.Sessions(),
			tasks:        pg.Tasks(),
			applications: pg.Applications(),
			stats:        pg.Stats(),
			checks:       map[string]handlers.Check{"postgres": pg.Ping},
			close:        pg.Close,
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		mem := memory.NewStore()
		return &store{
			users:        mem.Users(),
			sessions:     mem.Sessions(),
			tasks:        mem.Tasks(),
			applications: mem.Applications(),
			stats:        mem.Stats(),
			checks:       map[string]handlers.Check{"memory": mem.Ping},
			close:        func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
