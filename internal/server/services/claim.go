package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/logging"
	"github.com/soplanita/giftgenie/internal/server/metrics"
	"github.com/soplanita/giftgenie/internal/server/models"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
)

// Claims drives the per-item gift-claim protocol. An item is either
// unclaimed or claimed by exactly one recipient email; claiming is a
// recipient-only action, never available to the owner.
type Claims struct {
	repos  repomanager.Manager
	logger logging.Logger
}

func NewClaims(repos repomanager.Manager, logger logging.Logger) *Claims {
	return &Claims{repos: repos, logger: logger}
}

// SetClaim moves the item to the requested claim state on behalf of the
// caller. The check order is load-bearing: existence before membership
// before conflict before idempotence, and the conflict check runs strictly
// before any write.
//
// The write itself is conditional on the claim value read beforehand; if a
// concurrent claim invalidates the precondition, the read-check-write
// sequence is retried once before the conflict is surfaced.
func (s *Claims) SetClaim(ctx context.Context, callerID, wishlistID, itemID string, wantClaimed bool) (*models.Item, error) {
	user, err := s.repos.Users().GetByAuthID(ctx, callerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("caller identity: %w", common.ErrNotFound)
		}
		return nil, err
	}

	w, err := s.repos.Wishlists().Get(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(w.SharedWith, user.Email) {
		return nil, fmt.Errorf("user has not been added to the requested wishlist: %w", common.ErrForbidden)
	}
	if !slices.Contains(w.Items, itemID) {
		return nil, fmt.Errorf("requested item does not belong to specified wishlist: %w", common.ErrNotFound)
	}

	var item *models.Item
	backoff := retry.WithMaxRetries(1, retry.NewConstant(10*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		it, err := s.transition(ctx, itemID, user.Email, wantClaimed)
		if err != nil {
			// a lost race is worth one re-read: the conflicting claimant may
			// have been the caller's own earlier retry
			if errors.Is(err, common.ErrClaimConflict) {
				return retry.RetryableError(err)
			}
			return err
		}
		item = it
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrClaimConflict) {
			metrics.ClaimConflicts.Inc()
			s.logger.Debug(ctx, "claim conflict",
				"wishlist_id", wishlistID, "item_id", itemID)
		}
		return nil, err
	}
	return item, nil
}

// transition performs one read-check-write pass over the item.
func (s *Claims) transition(ctx context.Context, itemID, email string, wantClaimed bool) (*models.Item, error) {
	it, err := s.repos.Items().Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.Gifter != "" && it.Gifter != email {
		return nil, common.ErrClaimConflict
	}

	// no write when the requested state already holds
	if (!wantClaimed && it.Gifter == "") || (wantClaimed && it.Gifter == email) {
		return it, nil
	}

	next := ""
	if wantClaimed {
		next = email
	}
	if err := s.repos.Items().SetGifter(ctx, itemID, it.Gifter, next); err != nil {
		return nil, err
	}
	it.Gifter = next
	return it, nil
}
