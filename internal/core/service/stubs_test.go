package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // by id
	createErr error
	findErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

type stubSessionRepo struct {
	records   []*domain.RoleSelection
	insertErr error
}

func (r *stubSessionRepo) Insert(_ context.Context, sel *domain.RoleSelection) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *sel
	r.records = append(r.records, &clone)
	return nil
}

func (r *stubSessionRepo) Latest(_ context.Context, userID string) (*domain.RoleSelection, error) {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			clone := *r.records[i]
			return &clone, nil
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	byID       map[string]*domain.Task
	order      []string // insertion order
	createErr  error
	lastFilter ports.TaskFilter
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{byID: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *t
	r.byID[t.ID] = &clone
	r.order = append(r.order, t.ID)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

// List applies the same filters and ordering the real repositories use.
func (r *stubTaskRepo) List(_ context.Context, f ports.TaskFilter) ([]*domain.Task, int64, error) {
	r.lastFilter = f
	var matched []*domain.Task
	for _, t := range r.byID {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.City != "" && t.City != f.City {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		clone := *t
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

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

func (r *stubTaskRepo) ListByPoster(_ context.Context, posterID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.byID[r.order[i]]
		if t.PosterID == posterID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

// stubAppRepo enforces the (task, applicant) uniqueness the way a unique
// index does: atomically inside Create.
type stubAppRepo struct {
	mu          sync.Mutex
	apps        []*domain.Application
	existsErr   error
	skipExists  bool // report "not found" from Exists to force the Create path
	existsCalls int
}

func (r *stubAppRepo) Create(_ context.Context, a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.TaskID == a.TaskID && existing.ApplicantID == a.ApplicantID {
			return domain.ErrDuplicateApplication
		}
	}
	clone := *a
	r.apps = append(r.apps, &clone)
	return nil
}

func (r *stubAppRepo) Exists(_ context.Context, taskID, applicantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.existsCalls++
	if r.existsErr != nil {
		return false, r.existsErr
	}
	if r.skipExists {
		return false, nil
	}
	for _, a := range r.apps {
		if a.TaskID == taskID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAppRepo) ListByTask(_ context.Context, taskID string) ([]*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Application
	for _, a := range r.apps {
		if a.TaskID == taskID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppRepo) ListByApplicant(_ context.Context, applicantID string) ([]*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Application
	for i := len(r.apps) - 1; i >= 0; i-- {
		if r.apps[i].ApplicantID == applicantID {
			clone := *r.apps[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}
