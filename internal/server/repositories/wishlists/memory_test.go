package wishlists

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soplanita/giftgenie/internal/server/models"
)

func TestGetMany_AscendingByCreation(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	newest, err := repo.Insert(ctx, &models.Wishlist{Name: "newest", CreatedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	oldest, err := repo.Insert(ctx, &models.Wishlist{Name: "oldest", CreatedAt: base})
	require.NoError(t, err)
	middle, err := repo.Insert(ctx, &models.Wishlist{Name: "middle", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	got, err := repo.GetMany(ctx, []string{newest.ID, oldest.ID, middle.ID, "unknown-id"})
	require.NoError(t, err)
	require.Len(t, got, 3, "unknown ids are skipped, not errors")
	assert.Equal(t, []string{oldest.ID, middle.ID, newest.ID},
		[]string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGetMany_NoIdsYieldsEmptySlice(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got, "empty result must serialize as an array")
	assert.Empty(t, got)
}

func TestCopiesAreIsolated(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	w, err := repo.Insert(ctx, &models.Wishlist{Name: "Birthday"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, w.ID)
	require.NoError(t, err)
	got.Items = append(got.Items, "sneaky-item")

	fresh, err := repo.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Items, "mutating a returned copy must not leak into storage")
}
