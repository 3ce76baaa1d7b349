package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// TaskFilter carries the equality filters and window for listing tasks.
// Empty strings mean "no filter". Limit 0 means no limit.
type TaskFilter struct {
	Status   domain.TaskStatus
	City     string
	Category string
	Limit    int
	Skip     int
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns a page of tasks matching filter, newest first, and the
	// total number of matches ignoring Limit and Skip.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, int64, error)
	// ListByPoster returns every task posted by posterID, newest first.
	ListByPoster(ctx context.Context, posterID string) ([]*domain.Task, error)
}
