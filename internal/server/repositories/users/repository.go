// Package users provides persistence for user records, including the
// denormalized owned/shared wishlist id sets maintained by the sharing
// ledger.
package users

import (
	"context"

	"github.com/soplanita/giftgenie/internal/server/models"
)

// Repository is the storage contract for user records. Set mutations use
// set semantics: adding a present id or removing an absent one is a no-op,
// which keeps every write safe to retry.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	AddOwnedWishlist(ctx context.Context, authID, wishlistID string) error
	RemoveOwnedWishlist(ctx context.Context, authID, wishlistID string) error
	AddSharedWishlist(ctx context.Context, email, wishlistID string) error
}
