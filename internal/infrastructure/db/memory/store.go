// Package memory keeps every marketplace collection in process memory.
// It backs local development and the end-to-end API tests; uniqueness rules
// match the database drivers.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

var (
	_ ports.UserRepository        = (*UserRepository)(nil)
	_ ports.SessionRepository     = (*SessionRepository)(nil)
	_ ports.TaskRepository        = (*TaskRepository)(nil)
	_ ports.ApplicationRepository = (*ApplicationRepository)(nil)
	_ ports.StatsRepository       = (*StatsRepository)(nil)
)

type Store struct {
	mu sync.RWMutex

	users        map[string]domain.User
	emails       map[string]string
	sessions     []domain.RoleSelection
	tasks        []domain.Task
	taskIndex    map[string]int
	applications []domain.Application
	applied      map[[2]string]struct{}
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		emails:    make(map[string]string),
		taskIndex: make(map[string]int),
		applied:   make(map[[2]string]struct{}),
	}
}

// Ping always succeeds; it lets the store stand in for a database health check.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Users() *UserRepository               { return &UserRepository{s: s} }
func (s *Store) Sessions() *SessionRepository         { return &SessionRepository{s: s} }
func (s *Store) Tasks() *TaskRepository               { return &TaskRepository{s: s} }
func (s *Store) Applications() *ApplicationRepository { return &ApplicationRepository{s: s} }
func (s *Store) Stats() *StatsRepository              { return &StatsRepository{s: s} }

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[u.Email]; taken {
		return domain.ErrEmailTaken
	}
	r.s.users[u.ID] = *u
	r.s.emails[u.Email] = u.ID
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := r.s.users[id]
	return &u, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

type SessionRepository struct{ s *Store }

func (r *SessionRepository) Insert(_ context.Context, sel *domain.RoleSelection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions = append(r.s.sessions, *sel)
	return nil
}

// Latest scans backwards so that of two selections with the same timestamp
// the one inserted last wins.
func (r *SessionRepository) Latest(_ context.Context, userID string) (*domain.RoleSelection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest *domain.RoleSelection
	for i := len(r.s.sessions) - 1; i >= 0; i-- {
		sel := r.s.sessions[i]
		if sel.UserID != userID {
			continue
		}
		if latest == nil || sel.CreatedAt.After(latest.CreatedAt) {
			latest = &sel
		}
	}
	return latest, nil
}

type TaskRepository struct{ s *Store }

func (r *TaskRepository) Create(_ context.Context, t *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.taskIndex[t.ID] = len(r.s.tasks)
	r.s.tasks = append(r.s.tasks, *t)
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.taskIndex[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t := r.s.tasks[i]
	return &t, nil
}

func (r *TaskRepository) List(_ context.Context, f ports.TaskFilter) ([]*domain.Task, int64, error) {
	matched := r.collect(func(t *domain.Task) bool {
		return (f.Status == "" || t.Status == f.Status) &&
			(f.City == "" || t.City == f.City) &&
			(f.Category == "" || t.Category == f.Category)
	})
	total := int64(len(matched))

	if f.Skip >= len(matched) {
		return []*domain.Task{}, total, nil
	}
	matched = matched[f.Skip:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (r *TaskRepository) ListByPoster(_ context.Context, posterID string) ([]*domain.Task, error) {
	return r.collect(func(t *domain.Task) bool { return t.PosterID == posterID }), nil
}

// collect returns copies of matching tasks, newest first.
func (r *TaskRepository) collect(match func(*domain.Task) bool) []*domain.Task {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Task{}
	for i := len(r.s.tasks) - 1; i >= 0; i-- {
		t := r.s.tasks[i]
		if match(&t) {
			out = append(out, &t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

type ApplicationRepository struct{ s *Store }

func (r *ApplicationRepository) Create(_ context.Context, a *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := [2]string{a.TaskID, a.ApplicantID}
	if _, dup := r.s.applied[key]; dup {
		return domain.ErrDuplicateApplication
	}
	r.s.applied[key] = struct{}{}
	r.s.applications = append(r.s.applications, *a)
	return nil
}

func (r *ApplicationRepository) Exists(_ context.Context, taskID, applicantID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.applied[[2]string{taskID, applicantID}]
	return ok, nil
}

// ListByTask returns the task's applications oldest first.
func (r *ApplicationRepository) ListByTask(_ context.Context, taskID string) ([]*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Application{}
	for _, a := range r.s.applications {
		a := a // per-iteration copy (pre-Go 1.22 loop semantics)
		if a.TaskID == taskID {
			out = append(out, &a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ListByApplicant returns the applicant's applications newest first.
func (r *ApplicationRepository) ListByApplicant(_ context.Context, applicantID string) ([]*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Application{}
	for i := len(r.s.applications) - 1; i >= 0; i-- {
		a := r.s.applications[i]
		if a.ApplicantID == applicantID {
			out = append(out, &a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type StatsRepository struct{ s *Store }

func (r *StatsRepository) Stats(context.Context) (*domain.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st := &domain.Stats{
		TotalTasks:        int64(len(r.s.tasks)),
		TotalUsers:        int64(len(r.s.users)),
		TotalApplications: int64(len(r.s.applications)),
	}
	for _, t := range r.s.tasks {
		if t.Status == domain.TaskActive {
			st.ActiveTasks++
		}
	}
	return st, nil
}
