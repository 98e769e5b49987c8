// Package items provides persistence for wishlist items, including the
// conditional claim-field update.
package items

import (
	"context"

	"github.com/soplanita/giftgenie/internal/server/models"
)

// Repository is the storage contract for items.
//
// SetGifter is a conditional write: the claim field is set to next only if
// it still holds prev at the time of the update. A failed precondition
// returns common.ErrClaimConflict so two racing claimants can never both
// succeed. An empty gifter value means unclaimed.
type Repository interface {
	Insert(ctx context.Context, it *models.Item) (*models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	SetGifter(ctx context.Context, id, prev, next string) error
}
