package items

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

// MongoRepository implements Repository over the items collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("items")}
}

func (r *MongoRepository) Insert(ctx context.Context, it *models.Item) (*models.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, it); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return it, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	it := &models.Item{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(it); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return it, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SetGifter applies the claim transition with a precondition on the previous
// value. The filter matches both id and the current gifter, so a concurrent
// claim that slipped in between read and write leaves MatchedCount at zero
// instead of being overwritten.
func (r *MongoRepository) SetGifter(ctx context.Context, id, prev, next string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "gifter": prev},
		bson.M{"$set": bson.M{"gifter": next}})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrClaimConflict
	}
	return nil
}
