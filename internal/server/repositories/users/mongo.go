package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
)

// MongoRepository implements Repository over the users collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("users")}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Wishlists == nil {
		user.Wishlists = []string{}
	}
	if user.SharedWishlists == nil {
		user.SharedWishlists = []string{}
	}
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"auth_id": authID})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	user := &models.User{}
	if err := r.col.FindOne(ctx, filter).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) AddOwnedWishlist(ctx context.Context, authID, wishlistID string) error {
	return r.updateOne(ctx,
		bson.M{"auth_id": authID},
		bson.M{"$addToSet": bson.M{"wishlists": wishlistID}})
}

func (r *MongoRepository) RemoveOwnedWishlist(ctx context.Context, authID, wishlistID string) error {
	return r.updateOne(ctx,
		bson.M{"auth_id": authID},
		bson.M{"$pull": bson.M{"wishlists": wishlistID}})
}

func (r *MongoRepository) AddSharedWishlist(ctx context.Context, email, wishlistID string) error {
	return r.updateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"shared_wishlists": wishlistID}})
}

func (r *MongoRepository) updateOne(ctx context.Context, filter, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
