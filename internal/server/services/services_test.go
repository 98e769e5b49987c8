package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soplanita/giftgenie/internal/logging"
	"github.com/soplanita/giftgenie/internal/server/models"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
)

// --- shared fixtures ---

type testEnv struct {
	repos      *repomanager.MemoryManager
	membership *Membership
	sharing    *Sharing
	wishlists  *Wishlists
	claims     *Claims
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := repomanager.NewMemoryManager()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	membership := NewMembership(repos)
	sharing := NewSharing(repos, logger)

	return &testEnv{
		repos:      repos,
		membership: membership,
		sharing:    sharing,
		wishlists:  NewWishlists(repos, membership, sharing, logger),
		claims:     NewClaims(repos, logger),
	}
}

func (e *testEnv) seedUser(t *testing.T, authID, email string) *models.User {
	t.Helper()

	u, err := e.repos.Users().Create(context.Background(), &models.User{
		AuthID: authID,
		Email:  email,
	})
	require.NoError(t, err)
	return u
}

// seedWishlist creates a wishlist owned by authID with an explicit creation
// time, bypassing the service so tests control ordering.
func (e *testEnv) seedWishlist(t *testing.T, authID, name string, createdAt time.Time) *models.Wishlist {
	t.Helper()

	ctx := context.Background()
	w, err := e.repos.Wishlists().Insert(ctx, &models.Wishlist{
		Name:      name,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	require.NoError(t, e.repos.Users().AddOwnedWishlist(ctx, authID, w.ID))
	return w
}
