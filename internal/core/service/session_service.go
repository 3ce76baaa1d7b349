package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

// SessionService records which role a user is acting under.
type SessionService struct {
	repo ports.SessionRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewSessionService(repo ports.SessionRepository, log zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, log: log, now: time.Now}
}

// RecordRoleSelection appends a new selection. Earlier selections are kept.
func (s *SessionService) RecordRoleSelection(ctx context.Context, userID, role string) (*domain.RoleSelection, error) {
	r := domain.Role(role)
	if !r.ValidSession() {
		return nil, domain.ErrInvalidRole
	}

	sel := &domain.RoleSelection{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      r,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, sel); err != nil {
		return nil, fmt.Errorf("record role selection: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("role", role).Msg("role selected")
	return sel, nil
}

func (s *SessionService) CurrentRole(ctx context.Context, user *domain.User) (domain.Role, error) {
	latest, err := s.repo.Latest(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("current role: %w", err)
	}
	if latest == nil {
		return user.PreferredRole, nil
	}
	return latest.Role, nil
}
