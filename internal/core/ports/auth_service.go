package ports

import (
	"context"
	"time"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	City          string
	PreferredRole string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ResolveToken verifies a bearer token and loads the user it was issued to.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
