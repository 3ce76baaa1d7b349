package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

type SessionService interface {
	RecordRoleSelection(ctx context.Context, userID, role string) (*domain.RoleSelection, error)
	// CurrentRole is the role of the newest selection, falling back to the
	// user's preferred role.
	CurrentRole(ctx context.Context, user *domain.User) (domain.Role, error)
}
