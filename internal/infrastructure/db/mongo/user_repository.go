package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yaparim/marketplace/internal/core/domain"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Email         string    `bson:"email"`
	PasswordHash  string    `bson:"password"`
	Phone         string    `bson:"phone"`
	City          string    `bson:"city"`
	PreferredRole string    `bson:"preferred_role"`
	Rating        float64   `bson:"rating"`
	TotalTasks    int       `bson:"total_tasks"`
	CreatedAt     time.Time `bson:"created_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Phone:         user.Phone,
		City:          user.City,
		PreferredRole: string(user.PreferredRole),
		Rating:        user.Rating,
		TotalTasks:    user.TotalTasks,
		CreatedAt:     user.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:            mu.ID,
		Name:          mu.Name,
		Email:         mu.Email,
		PasswordHash:  mu.PasswordHash,
		Phone:         mu.Phone,
		City:          mu.City,
		PreferredRole: domain.Role(mu.PreferredRole),
		Rating:        mu.Rating,
		TotalTasks:    mu.TotalTasks,
		CreatedAt:     mu.CreatedAt.UTC(),
	}, nil
}
