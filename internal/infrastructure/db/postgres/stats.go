package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

var _ ports.StatsRepository = (*StatsRepository)(nil)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func (r *StatsRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM tasks WHERE status = $1),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM applications);`

	var s domain.Stats
	err := r.pool.QueryRow(ctx, query, string(domain.TaskActive)).
		Scan(&s.TotalTasks, &s.ActiveTasks, &s.TotalUsers, &s.TotalApplications)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return &s, nil
}
