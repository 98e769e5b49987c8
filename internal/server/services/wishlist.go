package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/logging"
	"github.com/soplanita/giftgenie/internal/server/metrics"
	"github.com/soplanita/giftgenie/internal/server/models"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
)

// Wishlists implements the wishlist lifecycle: create, list, get, rename,
// share, item management, and cascading delete. Operations that write to
// more than one entity apply ordered idempotent writes and surface a
// PartialError naming the committed steps when a later write fails.
type Wishlists struct {
	repos      repomanager.Manager
	membership *Membership
	sharing    *Sharing
	logger     logging.Logger
}

func NewWishlists(repos repomanager.Manager, membership *Membership, sharing *Sharing, logger logging.Logger) *Wishlists {
	return &Wishlists{repos: repos, membership: membership, sharing: sharing, logger: logger}
}

// Create inserts a new empty wishlist owned by the caller and registers its
// id in the caller's owned set.
func (s *Wishlists) Create(ctx context.Context, callerID, name string) (*models.Wishlist, error) {
	u, err := s.membership.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !isNameValid(name) {
		return nil, fmt.Errorf("wishlist must have a name: %w", common.ErrInvalidData)
	}

	w := &models.Wishlist{
		Name:       name,
		Owner:      u.Email,
		Items:      []string{},
		SharedWith: []string{},
		CreatedAt:  time.Now().UTC(),
	}
	w, err = s.repos.Wishlists().Insert(ctx, w)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Users().AddOwnedWishlist(ctx, callerID, w.ID); err != nil {
		metrics.PartialFailures.WithLabelValues("wishlist create").Inc()
		s.logger.Warn(ctx, "wishlist create partially committed",
			"wishlist_id", w.ID, "error", err.Error())
		return nil, &common.PartialError{
			Op:        "wishlist create",
			Committed: []string{"wishlist insert"},
			Err:       err,
		}
	}
	return w, nil
}

// List returns the wishlists the caller owns, ascending by creation time.
func (s *Wishlists) List(ctx context.Context, callerID string) ([]*models.Wishlist, error) {
	u, err := s.membership.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return s.repos.Wishlists().GetMany(ctx, u.Wishlists)
}

// Get fetches a wishlist after the owner or recipient check, depending on
// how the caller is acting.
func (s *Wishlists) Get(ctx context.Context, callerID, wishlistID string, asOwner bool) (*models.Wishlist, error) {
	if asOwner {
		return s.membership.AuthorizeOwner(ctx, callerID, wishlistID)
	}
	_, w, err := s.membership.recipientView(ctx, callerID, wishlistID)
	return w, err
}

// Rename updates the wishlist name and returns the refreshed record.
// Owner-only.
func (s *Wishlists) Rename(ctx context.Context, callerID, wishlistID, newName string) (*models.Wishlist, error) {
	if _, err := s.membership.AuthorizeOwner(ctx, callerID, wishlistID); err != nil {
		return nil, err
	}
	if !isNameValid(newName) {
		return nil, fmt.Errorf("wishlist must have a name: %w", common.ErrInvalidData)
	}
	if err := s.repos.Wishlists().SetName(ctx, wishlistID, newName); err != nil {
		return nil, err
	}
	return s.repos.Wishlists().Get(ctx, wishlistID)
}

// Share grants recipientEmail access to the wishlist through the sharing
// ledger and returns the refreshed record. Owner-only.
func (s *Wishlists) Share(ctx context.Context, callerID, wishlistID, recipientEmail string) (*models.Wishlist, error) {
	if _, err := s.membership.AuthorizeOwner(ctx, callerID, wishlistID); err != nil {
		return nil, err
	}
	if !isEmailValid(recipientEmail) {
		return nil, fmt.Errorf("recipient email is not valid: %w", common.ErrInvalidData)
	}
	if err := s.sharing.AddRecipient(ctx, wishlistID, recipientEmail); err != nil {
		return nil, err
	}
	return s.repos.Wishlists().Get(ctx, wishlistID)
}

// AddItem inserts a new item and registers it in the wishlist's item list.
// Owner-only.
func (s *Wishlists) AddItem(ctx context.Context, callerID, wishlistID, name string, price float64, supplier string) (*models.Item, error) {
	if _, err := s.membership.AuthorizeOwner(ctx, callerID, wishlistID); err != nil {
		return nil, err
	}
	if !isNameValid(name) {
		return nil, fmt.Errorf("item must have a name: %w", common.ErrInvalidData)
	}

	it := &models.Item{
		Name:      name,
		Price:     price,
		Supplier:  supplier,
		CreatedAt: time.Now().UTC(),
	}
	it, err := s.repos.Items().Insert(ctx, it)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Wishlists().AddItem(ctx, wishlistID, it.ID); err != nil {
		metrics.PartialFailures.WithLabelValues("item add").Inc()
		s.logger.Warn(ctx, "item add partially committed",
			"wishlist_id", wishlistID, "item_id", it.ID, "error", err.Error())
		return nil, &common.PartialError{
			Op:        "item add",
			Committed: []string{"item insert"},
			Err:       err,
		}
	}
	return it, nil
}

// RemoveItem deletes an item from the wishlist. The wishlist-side reference
// is removed first so readers never hold an id pointing at a deleted item.
// Owner-only.
func (s *Wishlists) RemoveItem(ctx context.Context, callerID, wishlistID, itemID string) error {
	w, err := s.membership.AuthorizeOwner(ctx, callerID, wishlistID)
	if err != nil {
		return err
	}
	if !slices.Contains(w.Items, itemID) {
		return fmt.Errorf("item does not belong to specified wishlist: %w", common.ErrNotFound)
	}

	if err := s.repos.Wishlists().RemoveItem(ctx, wishlistID, itemID); err != nil {
		return err
	}
	if err := s.repos.Items().Delete(ctx, itemID); err != nil {
		metrics.PartialFailures.WithLabelValues("item remove").Inc()
		s.logger.Warn(ctx, "item remove partially committed",
			"wishlist_id", wishlistID, "item_id", itemID, "error", err.Error())
		return &common.PartialError{
			Op:        "item remove",
			Committed: []string{"wishlist item-set remove"},
			Err:       err,
		}
	}
	return nil
}

// Delete removes the wishlist, all items it contains, and the owner-side
// reference. Items go first: a failure later in the sequence can strand an
// empty wishlist record but never orphaned items. Owner-only.
func (s *Wishlists) Delete(ctx context.Context, callerID, wishlistID string) error {
	w, err := s.membership.AuthorizeOwner(ctx, callerID, wishlistID)
	if err != nil {
		return err
	}

	if err := s.repos.Items().DeleteMany(ctx, w.Items); err != nil {
		return err
	}
	if err := s.repos.Wishlists().Delete(ctx, wishlistID); err != nil {
		metrics.PartialFailures.WithLabelValues("wishlist delete").Inc()
		s.logger.Warn(ctx, "wishlist delete partially committed",
			"wishlist_id", wishlistID, "error", err.Error())
		return &common.PartialError{
			Op:        "wishlist delete",
			Committed: []string{"items delete"},
			Err:       err,
		}
	}
	if err := s.repos.Users().RemoveOwnedWishlist(ctx, callerID, wishlistID); err != nil {
		metrics.PartialFailures.WithLabelValues("wishlist delete").Inc()
		s.logger.Warn(ctx, "wishlist delete partially committed",
			"wishlist_id", wishlistID, "error", err.Error())
		return &common.PartialError{
			Op:        "wishlist delete",
			Committed: []string{"items delete", "wishlist delete"},
			Err:       err,
		}
	}
	return nil
}
