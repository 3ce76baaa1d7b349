package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// StatsRepository computes marketplace-wide counters from the store.
type StatsRepository interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}
