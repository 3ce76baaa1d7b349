package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{ID: "u1", Email: "a@x.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &domain.User{ID: "u2", Email: "a@x.com"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil || got.ID != "u1" {
		t.Fatalf("unexpected lookup: %+v, %v", got, err)
	}
	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()
	_ = repo.Create(ctx, &domain.User{ID: "u1", Name: "Ayşe", Email: "a@x.com"})

	got, _ := repo.FindByID(ctx, "u1")
	got.Name = "changed"

	again, _ := repo.FindByID(ctx, "u1")
	if again.Name != "Ayşe" {
		t.Fatalf("store was mutated through a returned pointer")
	}
}

func TestSessionRepository_Latest(t *testing.T) {
	repo := NewStore().Sessions()
	ctx := context.Background()

	sel, err := repo.Latest(ctx, "u1")
	if err != nil || sel != nil {
		t.Fatalf("expected no selection, got %+v, %v", sel, err)
	}

	_ = repo.Insert(ctx, &domain.RoleSelection{ID: "s1", UserID: "u1", Role: domain.RoleProvider, CreatedAt: base})
	_ = repo.Insert(ctx, &domain.RoleSelection{ID: "s2", UserID: "u1", Role: domain.RolePoster, CreatedAt: base})
	_ = repo.Insert(ctx, &domain.RoleSelection{ID: "s3", UserID: "u2", Role: domain.RoleProvider, CreatedAt: base.Add(time.Hour)})

	sel, _ = repo.Latest(ctx, "u1")
	if sel == nil || sel.ID != "s2" {
		t.Fatalf("expected s2 to win the timestamp tie, got %+v", sel)
	}
}

func TestTaskRepository_ListFiltersAndPages(t *testing.T) {
	repo := NewStore().Tasks()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		city := "Ankara"
		if i%2 == 1 {
			city = "İzmir"
		}
		_ = repo.Create(ctx, &domain.Task{
			ID:        fmt.Sprintf("t%d", i),
			City:      city,
			Category:  "Temizlik",
			Status:    domain.TaskActive,
			PosterID:  "p",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	tasks, total, err := repo.List(ctx, ports.TaskFilter{Status: domain.TaskActive, City: "Ankara"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(tasks) != 3 {
		t.Fatalf("expected 3 Ankara tasks, got %d (total %d)", len(tasks), total)
	}
	if tasks[0].ID != "t4" || tasks[2].ID != "t0" {
		t.Fatalf("expected newest first, got %s..%s", tasks[0].ID, tasks[2].ID)
	}

	tasks, total, _ = repo.List(ctx, ports.TaskFilter{Limit: 2, Skip: 1})
	if total != 5 || len(tasks) != 2 || tasks[0].ID != "t3" {
		t.Fatalf("unexpected page: %d tasks, total %d", len(tasks), total)
	}

	tasks, total, _ = repo.List(ctx, ports.TaskFilter{Skip: 10})
	if total != 5 || tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil page past the end, got %v (total %d)", tasks, total)
	}

	mine, _ := repo.ListByPoster(ctx, "p")
	if len(mine) != 5 {
		t.Fatalf("expected 5 tasks for poster, got %d", len(mine))
	}
}

func TestApplicationRepository_ConcurrentDuplicate(t *testing.T) {
	repo := NewStore().Applications()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, &domain.Application{ID: fmt.Sprintf("a%d", i), TaskID: "t1", ApplicantID: "u1"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			} else if !errors.Is(err, domain.ErrDuplicateApplication) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if created != 1 {
		t.Fatalf("expected exactly one application, got %d", created)
	}
	ok, _ := repo.Exists(ctx, "t1", "u1")
	if !ok {
		t.Fatalf("expected application to exist")
	}
}

func TestApplicationRepository_Ordering(t *testing.T) {
	repo := NewStore().Applications()
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Application{ID: "a1", TaskID: "t1", ApplicantID: "u1", CreatedAt: base})
	_ = repo.Create(ctx, &domain.Application{ID: "a2", TaskID: "t1", ApplicantID: "u2", CreatedAt: base.Add(time.Minute)})
	_ = repo.Create(ctx, &domain.Application{ID: "a3", TaskID: "t2", ApplicantID: "u1", CreatedAt: base.Add(2 * time.Minute)})

	byTask, _ := repo.ListByTask(ctx, "t1")
	if len(byTask) != 2 || byTask[0].ID != "a1" {
		t.Fatalf("expected oldest first for task, got %+v", byTask)
	}
	byUser, _ := repo.ListByApplicant(ctx, "u1")
	if len(byUser) != 2 || byUser[0].ID != "a3" {
		t.Fatalf("expected newest first for applicant, got %+v", byUser)
	}
}

func TestStatsRepository(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.Users().Create(ctx, &domain.User{ID: "u1", Email: "a@x.com"})
	_ = s.Tasks().Create(ctx, &domain.Task{ID: "t1", Status: domain.TaskActive})
	_ = s.Tasks().Create(ctx, &domain.Task{ID: "t2", Status: "closed"})
	_ = s.Applications().Create(ctx, &domain.Application{ID: "a1", TaskID: "t1", ApplicantID: "u1"})

	st, err := s.Stats().Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := domain.Stats{TotalTasks: 2, ActiveTasks: 1, TotalUsers: 1, TotalApplications: 1}
	if *st != want {
		t.Fatalf("expected %+v, got %+v", want, *st)
	}
}
