package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yaparim/marketplace/internal/core/domain"
)

type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Stats
	var err error
	if s.TotalTasks, err = r.db.Collection(collectionTasks).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if s.ActiveTasks, err = r.db.Collection(collectionTasks).CountDocuments(ctx, bson.M{"status": string(domain.TaskActive)}); err != nil {
		return nil, fmt.Errorf("count active tasks: %w", err)
	}
	if s.TotalUsers, err = r.db.Collection(collectionUsers).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if s.TotalApplications, err = r.db.Collection(collectionApplications).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	return &s, nil
}
