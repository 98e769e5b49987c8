package wishlists

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
)

// MongoRepository implements Repository over the wishlists collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("wishlists")}
}

func (r *MongoRepository) Insert(ctx context.Context, w *models.Wishlist) (*models.Wishlist, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Items == nil {
		w.Items = []string{}
	}
	if w.SharedWith == nil {
		w.SharedWith = []string{}
	}
	if _, err := r.col.InsertOne(ctx, w); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Wishlist, error) {
	w := &models.Wishlist{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}

func (r *MongoRepository) GetMany(ctx context.Context, ids []string) ([]*models.Wishlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_created", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var result []*models.Wishlist
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if result == nil {
		// callers serialize the result straight to JSON; an owner with no
		// wishlists gets an empty array, not null
		result = []*models.Wishlist{}
	}
	return result, nil
}

func (r *MongoRepository) SetName(ctx context.Context, id, name string) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"name": name}})
}

func (r *MongoRepository) AddRecipient(ctx context.Context, id, email string) error {
	return r.updateOne(ctx, id, bson.M{"$addToSet": bson.M{"shared_with": email}})
}

func (r *MongoRepository) AddItem(ctx context.Context, id, itemID string) error {
	return r.updateOne(ctx, id, bson.M{"$addToSet": bson.M{"items": itemID}})
}

func (r *MongoRepository) RemoveItem(ctx context.Context, id, itemID string) error {
	return r.updateOne(ctx, id, bson.M{"$pull": bson.M{"items": itemID}})
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	// deleting an already-deleted wishlist is a no-op, not an error, so the
	// cascade stays retryable
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
