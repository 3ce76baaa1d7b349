package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// SessionRepository is the append-only role selection log.
type SessionRepository interface {
	Insert(ctx context.Context, sel *domain.RoleSelection) error
	// Latest returns the newest selection for userID, or nil when the user
	// never selected a role.
	Latest(ctx context.Context, userID string) (*domain.RoleSelection, error)
}
