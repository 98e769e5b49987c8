package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soplanita/giftgenie/internal/common"
)

func TestAuthorizeOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner-auth", "owner@example.com")
	other := env.seedUser(t, "other-auth", "other@example.com")
	ctx := context.Background()

	w := env.seedWishlist(t, owner.AuthID, "Birthday", time.Now().UTC())

	t.Run("owner passes and gets the wishlist", func(t *testing.T) {
		got, err := env.membership.AuthorizeOwner(ctx, owner.AuthID, w.ID)
		require.NoError(t, err)
		assert.Equal(t, w.ID, got.ID)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		_, err := env.membership.AuthorizeOwner(ctx, other.AuthID, w.ID)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("missing caller identity", func(t *testing.T) {
		_, err := env.membership.AuthorizeOwner(ctx, "ghost-auth", w.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("owned id without backing record is an anomaly", func(t *testing.T) {
		dangling := env.seedWishlist(t, owner.AuthID, "gone", time.Now().UTC())
		require.NoError(t, env.repos.Wishlists().Delete(ctx, dangling.ID))

		_, err := env.membership.AuthorizeOwner(ctx, owner.AuthID, dangling.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestAuthorizeRecipient(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner-auth", "owner@example.com")
	recipient := env.seedUser(t, "r-auth", "r@example.com")
	outsider := env.seedUser(t, "x-auth", "x@example.com")
	ctx := context.Background()

	w, err := env.wishlists.Create(ctx, owner.AuthID, "Birthday")
	require.NoError(t, err)
	_, err = env.wishlists.Share(ctx, owner.AuthID, w.ID, recipient.Email)
	require.NoError(t, err)

	t.Run("recipient passes and email is resolved", func(t *testing.T) {
		email, err := env.membership.AuthorizeRecipient(ctx, recipient.AuthID, w.ID)
		require.NoError(t, err)
		assert.Equal(t, recipient.Email, email)
	})

	t.Run("outsider forbidden", func(t *testing.T) {
		_, err := env.membership.AuthorizeRecipient(ctx, outsider.AuthID, w.ID)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("owner is not a recipient", func(t *testing.T) {
		_, err := env.membership.AuthorizeRecipient(ctx, owner.AuthID, w.ID)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("missing wishlist", func(t *testing.T) {
		_, err := env.membership.AuthorizeRecipient(ctx, recipient.AuthID, "no-such-id")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
