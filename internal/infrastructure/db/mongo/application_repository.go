package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

// Create inserts an application. The uniq_task_applicant index turns a
// concurrent duplicate into domain.ErrDuplicateApplication.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, taskID, applicantID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx,
		bson.M{"task_id": taskID, "applicant_id": applicantID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return n > 0, nil
}

func (r *ApplicationRepository) ListByTask(ctx context.Context, taskID string) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{"task_id": taskID}, 1)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{"applicant_id": applicantID}, -1)
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M, order int) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: order}}))
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := []*domain.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return apps, nil
}
