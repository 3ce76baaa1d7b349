package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// UserRepository persists user identities and password hashes. Email is
// unique at the store level; Create returns domain.ErrEmailTaken on a
// violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
