package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// ApplyInput carries a bid against a task.
type ApplyInput struct {
	TaskID       string
	Proposal     string
	OfferedPrice float64
}

// UserActivity groups what a user posted and what they applied to.
type UserActivity struct {
	CreatedTasks []*domain.Task
	Applications []*domain.Application
}

type ApplicationService interface {
	Apply(ctx context.Context, applicant *domain.User, input ApplyInput) (*domain.Application, error)
	ListApplications(ctx context.Context, requester *domain.User, taskID string) ([]*domain.Application, error)
	ListForUser(ctx context.Context, user *domain.User) (*UserActivity, error)
}
