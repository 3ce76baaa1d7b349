package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func (r *SessionRepository) Insert(ctx context.Context, sel *domain.RoleSelection) error {
	const query = `INSERT INTO role_selections (id, user_id, role, created_at) VALUES ($1, $2, $3, $4);`
	if _, err := r.pool.Exec(ctx, query, sel.ID, sel.UserID, string(sel.Role), sel.CreatedAt); err != nil {
		return fmt.Errorf("insert role selection: %w", err)
	}
	return nil
}

// Latest returns nil, nil when the user never selected a role.
func (r *SessionRepository) Latest(ctx context.Context, userID string) (*domain.RoleSelection, error) {
	const query = `
		SELECT id, user_id, role, created_at
		FROM role_selections
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1;`

	var sel domain.RoleSelection
	var role string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&sel.ID, &sel.UserID, &role, &sel.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest role selection: %w", err)
	}
	sel.Role = domain.Role(role)
	sel.CreatedAt = sel.CreatedAt.UTC()
	return &sel, nil
}
