// Package services contains the server-side business logic: membership
// authorization, wishlist lifecycle, the sharing ledger, and the item claim
// state machine.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
)

// Membership decides whether a caller may read or mutate a wishlist,
// distinguishing owner from shared-recipient capabilities. It is read-only.
type Membership struct {
	repos repomanager.Manager
}

func NewMembership(repos repomanager.Manager) *Membership {
	return &Membership{repos: repos}
}

// resolveCaller maps the caller id to their user record. A missing record is
// a legitimate runtime state (e.g. a deleted account with a still-valid
// token), so it maps to ErrNotFound rather than an internal error.
func (s *Membership) resolveCaller(ctx context.Context, callerID string) (*models.User, error) {
	u, err := s.repos.Users().GetByAuthID(ctx, callerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("caller identity: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// AuthorizeOwner verifies that the caller owns the wishlist and returns it.
// A wishlist id present in the owner's set but missing from storage is a
// data-integrity anomaly and is reported as such, not silently ignored.
func (s *Membership) AuthorizeOwner(ctx context.Context, callerID, wishlistID string) (*models.Wishlist, error) {
	u, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(u.Wishlists, wishlistID) {
		return nil, fmt.Errorf("wishlist does not belong to requesting user: %w", common.ErrForbidden)
	}
	w, err := s.repos.Wishlists().Get(ctx, wishlistID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("wishlist %s owned but missing from storage: %w", wishlistID, common.ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

// AuthorizeRecipient verifies that the wishlist has been shared with the
// caller and returns the caller's resolved email. The wishlist-side
// recipient set is the authorization source of truth; a stale user-side
// entry is tolerated on reads.
func (s *Membership) AuthorizeRecipient(ctx context.Context, callerID, wishlistID string) (string, error) {
	email, _, err := s.recipientView(ctx, callerID, wishlistID)
	return email, err
}

func (s *Membership) recipientView(ctx context.Context, callerID, wishlistID string) (string, *models.Wishlist, error) {
	u, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return "", nil, err
	}
	w, err := s.repos.Wishlists().Get(ctx, wishlistID)
	if err != nil {
		return "", nil, err
	}
	if !slices.Contains(w.SharedWith, u.Email) {
		return "", nil, fmt.Errorf("user has not been added to this wishlist: %w", common.ErrForbidden)
	}
	return u.Email, w, nil
}
