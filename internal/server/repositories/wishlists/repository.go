// Package wishlists provides persistence for wishlist records.
package wishlists

import (
	"context"

	"github.com/soplanita/giftgenie/internal/server/models"
)

// Repository is the storage contract for wishlists. AddRecipient and
// AddItem use set semantics, so repeating a write is harmless.
type Repository interface {
	Insert(ctx context.Context, w *models.Wishlist) (*models.Wishlist, error)
	Get(ctx context.Context, id string) (*models.Wishlist, error)
	// GetMany returns the wishlists with the given ids, sorted ascending by
	// creation time. Ids with no backing document are skipped.
	GetMany(ctx context.Context, ids []string) ([]*models.Wishlist, error)
	SetName(ctx context.Context, id, name string) error
	AddRecipient(ctx context.Context, id, email string) error
	AddItem(ctx context.Context, id, itemID string) error
	RemoveItem(ctx context.Context, id, itemID string) error
	Delete(ctx context.Context, id string) error
}
