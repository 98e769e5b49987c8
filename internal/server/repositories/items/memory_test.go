package items

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
)

func TestSetGifter_ConditionalWrite(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	it, err := repo.Insert(ctx, &models.Item{Name: "Bike"})
	require.NoError(t, err)

	t.Run("write with matching precondition", func(t *testing.T) {
		require.NoError(t, repo.SetGifter(ctx, it.ID, "", "r@example.com"))

		got, err := repo.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, "r@example.com", got.Gifter)
	})

	t.Run("stale precondition is a conflict", func(t *testing.T) {
		err := repo.SetGifter(ctx, it.ID, "", "s@example.com")
		assert.ErrorIs(t, err, common.ErrClaimConflict)

		got, err := repo.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, "r@example.com", got.Gifter, "conflicting write must not land")
	})

	t.Run("clear with matching precondition", func(t *testing.T) {
		require.NoError(t, repo.SetGifter(ctx, it.ID, "r@example.com", ""))

		got, err := repo.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Gifter)
	})

	t.Run("missing item", func(t *testing.T) {
		err := repo.SetGifter(ctx, "no-such-item", "", "r@example.com")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	assert.Equal(t, 2, repo.GifterWrites())
}
