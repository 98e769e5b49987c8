package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/logging"
	"github.com/soplanita/giftgenie/internal/server/metrics"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
)

// Sharing maintains the denormalized bidirectional share index: the
// wishlist-side recipient email set and the user-side shared-wishlist id
// set. The store offers no cross-document transactions, so the pair is
// applied as two ordered idempotent writes.
type Sharing struct {
	repos  repomanager.Manager
	logger logging.Logger
}

func NewSharing(repos repomanager.Manager, logger logging.Logger) *Sharing {
	return &Sharing{repos: repos, logger: logger}
}

// RecipientExists reports whether a user record with the given email exists.
func (s *Sharing) RecipientExists(ctx context.Context, email string) (bool, error) {
	_, err := s.repos.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AddRecipient grants email access to the wishlist. The user-side
// membership write lands first, then the wishlist-side authorization set;
// a failure between the two surfaces a PartialError naming the committed
// write so a retry can finish the job. Sharing with an already-present
// email is a no-op on both sides.
func (s *Sharing) AddRecipient(ctx context.Context, wishlistID, email string) error {
	if _, err := s.repos.Users().GetByEmail(ctx, email); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("recipient %s: %w", email, common.ErrNotFound)
		}
		return err
	}

	if err := s.repos.Users().AddSharedWishlist(ctx, email, wishlistID); err != nil {
		return err
	}
	if err := s.repos.Wishlists().AddRecipient(ctx, wishlistID, email); err != nil {
		metrics.PartialFailures.WithLabelValues("share").Inc()
		s.logger.Warn(ctx, "share partially committed",
			"wishlist_id", wishlistID, "email", email, "error", err.Error())
		return &common.PartialError{
			Op:        "share",
			Committed: []string{"user shared-set add"},
			Err:       err,
		}
	}
	return nil
}
