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

type TaskService struct {
	repo    ports.TaskRepository
	catalog *domain.Catalog
	logger  zerolog.Logger
	now     func() time.Time
}

func NewTaskService(repo ports.TaskRepository, catalog *domain.Catalog, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, catalog: catalog, logger: logger, now: time.Now}
}

// CreateTask validates and stores a new active task owned by owner.
func (s *TaskService) CreateTask(ctx context.Context, owner *domain.User, input ports.CreateTaskInput) (*domain.Task, error) {
	if !s.catalog.HasCategory(input.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if !s.catalog.HasCity(input.City) {
		return nil, domain.ErrInvalidCity
	}
	if input.Budget <= 0 {
		return nil, domain.ErrInvalidBudget
	}

	now := s.now().UTC()
	if !input.Deadline.After(now) {
		return nil, domain.ErrDeadlineNotFuture
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		City:        input.City,
		District:    input.District,
		Budget:      input.Budget,
		Deadline:    input.Deadline.UTC(),
		ContactInfo: input.ContactInfo,
		PosterID:    owner.ID,
		PosterName:  owner.Name,
		Status:      domain.TaskActive,
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("poster_id", owner.ID).Str("category", task.Category).Msg("task created")
	return task, nil
}

// ListTasks returns active tasks matching the equality filters, newest first.
func (s *TaskService) ListTasks(ctx context.Context, input ports.ListTasksInput) (*ports.TaskPage, error) {
	if input.Limit < 0 || input.Skip < 0 {
		return nil, domain.ErrInvalidPagination
	}

	tasks, total, err := s.repo.List(ctx, ports.TaskFilter{
		Status:   domain.TaskActive,
		City:     input.City,
		Category: input.Category,
		Limit:    input.Limit,
		Skip:     input.Skip,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return &ports.TaskPage{Tasks: tasks, Total: total}, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}
