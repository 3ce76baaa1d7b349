package ports

import (
	"context"

	"github.com/yaparim/marketplace/internal/core/domain"
)

type StatsService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}
