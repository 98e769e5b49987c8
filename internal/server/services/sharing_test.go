package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
	"github.com/soplanita/giftgenie/internal/server/repositories/wishlists"
)

func TestRecipientExists(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "r-auth", "r@example.com")
	ctx := context.Background()

	ok, err := env.sharing.RecipientExists(ctx, "r@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.sharing.RecipientExists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddRecipient(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner-auth", "owner@example.com")
	recipient := env.seedUser(t, "r-auth", "r@example.com")
	ctx := context.Background()

	w := env.seedWishlist(t, owner.AuthID, "Birthday", time.Now().UTC())

	t.Run("unknown recipient rejected before any write", func(t *testing.T) {
		err := env.sharing.AddRecipient(ctx, w.ID, "nobody@example.com")
		assert.ErrorIs(t, err, common.ErrNotFound)

		got, err := env.repos.Wishlists().Get(ctx, w.ID)
		require.NoError(t, err)
		assert.Empty(t, got.SharedWith)
	})

	t.Run("both index sides updated", func(t *testing.T) {
		require.NoError(t, env.sharing.AddRecipient(ctx, w.ID, recipient.Email))

		got, err := env.repos.Wishlists().Get(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{recipient.Email}, got.SharedWith)

		u, err := env.repos.Users().GetByEmail(ctx, recipient.Email)
		require.NoError(t, err)
		assert.Equal(t, []string{w.ID}, u.SharedWishlists)
	})

	t.Run("repeat add is a no-op", func(t *testing.T) {
		require.NoError(t, env.sharing.AddRecipient(ctx, w.ID, recipient.Email))

		got, err := env.repos.Wishlists().Get(ctx, w.ID)
		require.NoError(t, err)
		assert.Len(t, got.SharedWith, 1)
	})
}

// failingWishlistsRepo fails the wishlist-side set update, leaving the
// user-side write committed.
type failingWishlistsRepo struct {
	wishlists.Repository
}

func (f *failingWishlistsRepo) AddRecipient(ctx context.Context, id, email string) error {
	return errors.New("wishlists collection unavailable")
}

type fakeSharingManager struct {
	*repomanager.MemoryManager
	wishlistsRepo wishlists.Repository
}

func (m *fakeSharingManager) Wishlists() wishlists.Repository { return m.wishlistsRepo }

func TestAddRecipient_PartialFailure(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner-auth", "owner@example.com")
	recipient := env.seedUser(t, "r-auth", "r@example.com")
	ctx := context.Background()

	w := env.seedWishlist(t, owner.AuthID, "Birthday", time.Now().UTC())

	repos := &fakeSharingManager{
		MemoryManager: env.repos,
		wishlistsRepo: &failingWishlistsRepo{Repository: env.repos.WishlistsRepo},
	}
	sharing := NewSharing(repos, env.sharing.logger)

	err := sharing.AddRecipient(ctx, w.ID, recipient.Email)

	var pe *common.PartialError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "share", pe.Op)
	assert.Equal(t, []string{"user shared-set add"}, pe.Committed)

	// the committed user-side write is visible; a retry would finish the pair
	u, err := env.repos.Users().GetByEmail(ctx, recipient.Email)
	require.NoError(t, err)
	assert.Contains(t, u.SharedWishlists, w.ID)
}
