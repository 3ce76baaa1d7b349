package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

// StatsCache abstracts the stats snapshot cache (Redis). Get returns nil on
// a miss.
type StatsCache interface {
	Get(ctx context.Context) (*domain.Stats, error)
	Set(ctx context.Context, stats *domain.Stats) error
}

type statsService struct {
	repo  ports.StatsRepository
	cache StatsCache
	log   zerolog.Logger
}

// NewStatsService returns a StatsService. cache may be nil, in which case
// every call reads the store.
func NewStatsService(repo ports.StatsRepository, cache StatsCache, log zerolog.Logger) ports.StatsService {
	return &statsService{repo: repo, cache: cache, log: log}
}

func (s *statsService) Stats(ctx context.Context) (*domain.Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, reading store")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache stats")
		}
	}
	return stats, nil
}
