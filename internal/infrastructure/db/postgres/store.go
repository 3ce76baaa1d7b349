package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for every marketplace collection.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL and runs migrations.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Users() *UserRepository               { return &UserRepository{pool: s.pool} }
func (s *Store) Sessions() *SessionRepository         { return &SessionRepository{pool: s.pool} }
func (s *Store) Tasks() *TaskRepository               { return &TaskRepository{pool: s.pool} }
func (s *Store) Applications() *ApplicationRepository { return &ApplicationRepository{pool: s.pool} }
func (s *Store) Stats() *StatsRepository              { return &StatsRepository{pool: s.pool} }

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			phone TEXT NOT NULL,
			city TEXT NOT NULL,
			preferred_role TEXT NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_tasks INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
		`CREATE TABLE IF NOT EXISTS role_selections (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS role_selections_user_idx ON role_selections (user_id, created_at DESC);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			city TEXT NOT NULL,
			district TEXT NOT NULL,
			budget DOUBLE PRECISION NOT NULL,
			deadline TIMESTAMPTZ NOT NULL,
			contact_info TEXT NOT NULL,
			poster_id TEXT NOT NULL REFERENCES users(id),
			poster_name TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS tasks_browse_idx ON tasks (status, city, category, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS tasks_poster_idx ON tasks (poster_id, created_at DESC);`,
		`CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL REFERENCES tasks(id),
			applicant_id TEXT NOT NULL REFERENCES users(id),
			applicant_name TEXT NOT NULL,
			applicant_city TEXT NOT NULL,
			applicant_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			proposal TEXT NOT NULL,
			offered_price DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS applications_task_applicant_unique_idx ON applications (task_id, applicant_id);`,
		`CREATE INDEX IF NOT EXISTS applications_applicant_idx ON applications (applicant_id, created_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
