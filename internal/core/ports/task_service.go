package ports

import (
	"context"
	"time"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// CreateTaskInput carries the poster-supplied task fields.
type CreateTaskInput struct {
	Title       string
	Description string
	Category    string
	City        string
	District    string
	Budget      float64
	Deadline    time.Time
	ContactInfo string
}

// ListTasksInput carries the public listing query.
type ListTasksInput struct {
	City     string
	Category string
	Limit    int
	Skip     int
}

// TaskPage is a window of active tasks plus the total matching count.
type TaskPage struct {
	Tasks []*domain.Task
	Total int64
}

type TaskService interface {
	CreateTask(ctx context.Context, owner *domain.User, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, input ListTasksInput) (*TaskPage, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
}
