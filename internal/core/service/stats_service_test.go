package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yaparim/marketplace/internal/core/domain"
)

type stubStatsRepo struct {
	stats *domain.Stats
	err   error
	calls int
}

func (r *stubStatsRepo) Stats(_ context.Context) (*domain.Stats, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	clone := *r.stats
	return &clone, nil
}

type stubStatsCache struct {
	stored *domain.Stats
	getErr error
	setErr error
}

func (c *stubStatsCache) Get(_ context.Context) (*domain.Stats, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubStatsCache) Set(_ context.Context, s *domain.Stats) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = s
	return nil
}

func TestStatsService_CachesSnapshot(t *testing.T) {
	repo := &stubStatsRepo{stats: &domain.Stats{TotalTasks: 3, ActiveTasks: 2, TotalUsers: 5, TotalApplications: 7}}
	cache := &stubStatsCache{}
	svc := NewStatsService(repo, cache, discardLogger)

	for i := 0; i < 3; i++ {
		got, err := svc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalApplications != 7 {
			t.Fatalf("unexpected stats: %+v", got)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected the store to be read once, got %d", repo.calls)
	}
}

func TestStatsService_CacheFailuresAreNonFatal(t *testing.T) {
	repo := &stubStatsRepo{stats: &domain.Stats{TotalUsers: 1}}
	cache := &stubStatsCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewStatsService(repo, cache, discardLogger)

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if got.TotalUsers != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestStatsService_NoCache(t *testing.T) {
	repo := &stubStatsRepo{stats: &domain.Stats{}}
	svc := NewStatsService(repo, nil, discardLogger)

	_, _ = svc.Stats(context.Background())
	_, _ = svc.Stats(context.Background())
	if repo.calls != 2 {
		t.Fatalf("expected every call to hit the store, got %d", repo.calls)
	}
}

func TestStatsService_RepoError(t *testing.T) {
	svc := NewStatsService(&stubStatsRepo{err: errors.New("boom")}, nil, discardLogger)

	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
