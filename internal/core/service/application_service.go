package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

type applicationService struct {
	tasks ports.TaskRepository
	apps  ports.ApplicationRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewApplicationService returns an ApplicationService implementation.
func NewApplicationService(tasks ports.TaskRepository, apps ports.ApplicationRepository, log zerolog.Logger) ports.ApplicationService {
	return &applicationService{tasks: tasks, apps: apps, log: log, now: time.Now}
}

// Apply submits applicant's bid on a task.
func (s *applicationService) Apply(ctx context.Context, applicant *domain.User, in ports.ApplyInput) (*domain.Application, error) {
	// 1. The task must exist.
	task, err := s.tasks.FindByID(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}

	// 2. Posters cannot bid on their own tasks.
	if task.OwnedBy(applicant.ID) {
		return nil, domain.ErrSelfApplication
	}
	if in.OfferedPrice <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	// 3. Fast-path duplicate check. The store's unique (task_id, applicant_id)
	// constraint still decides concurrent submissions in step 4.
	exists, err := s.apps.Exists(ctx, task.ID, applicant.ID)
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	// 4. Insert with a snapshot of the applicant.
	app := &domain.Application{
		ID:              uuid.NewString(),
		TaskID:          task.ID,
		ApplicantID:     applicant.ID,
		ApplicantName:   applicant.Name,
		ApplicantCity:   applicant.City,
		ApplicantRating: applicant.Rating,
		Proposal:        in.Proposal,
		OfferedPrice:    in.OfferedPrice,
		Status:          domain.ApplicationPending,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.apps.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			s.log.Debug().Str("task_id", task.ID).Str("applicant_id", applicant.ID).Msg("concurrent duplicate application rejected")
			return nil, err
		}
		return nil, fmt.Errorf("apply: insert: %w", err)
	}

	s.log.Info().
		Str("application_id", app.ID).
		Str("task_id", task.ID).
		Str("applicant_id", applicant.ID).
		Msg("application submitted")

	return app, nil
}

// ListApplications returns every application on a task. Only the poster may
// read them.
func (s *applicationService) ListApplications(ctx context.Context, requester *domain.User, taskID string) ([]*domain.Application, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.OwnedBy(requester.ID) {
		return nil, domain.ErrNotTaskOwner
	}

	apps, err := s.apps.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if apps == nil {
		apps = []*domain.Application{}
	}
	return apps, nil
}

// ListForUser returns the caller's own tasks and applications. Both queries
// are scoped by the caller's id.
func (s *applicationService) ListForUser(ctx context.Context, user *domain.User) (*ports.UserActivity, error) {
	tasks, err := s.tasks.ListByPoster(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list user tasks: %w", err)
	}
	apps, err := s.apps.ListByApplicant(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list user applications: %w", err)
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}
	if apps == nil {
		apps = []*domain.Application{}
	}
	return &ports.UserActivity{CreatedTasks: tasks, Applications: apps}, nil
}
