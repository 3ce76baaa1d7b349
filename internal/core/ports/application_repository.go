package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// ApplicationRepository persists applications. The (task_id, applicant_id)
// pair is unique at the store level; Create returns
// domain.ErrDuplicateApplication on a violation.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	Exists(ctx context.Context, taskID, applicantID string) (bool, error)
	// ListByTask returns all applications for a task, oldest first.
	ListByTask(ctx context.Context, taskID string) ([]*domain.Application, error)
	// ListByApplicant returns the applications a user submitted, newest first.
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
}
