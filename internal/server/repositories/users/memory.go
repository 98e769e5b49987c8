package users

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
)

// MemoryRepository is an in-memory Repository used as the storage double in
// tests. It guards a map keyed by auth id and hands out copies so callers
// cannot mutate stored state behind its back.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := cloneUser(user)
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Wishlists == nil {
		u.Wishlists = []string{}
	}
	if u.SharedWishlists == nil {
		u.SharedWishlists = []string{}
	}
	r.users[u.AuthID] = u
	return cloneUser(u), nil
}

func (r *MemoryRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[authID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) AddOwnedWishlist(ctx context.Context, authID, wishlistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[authID]
	if !ok {
		return common.ErrNotFound
	}
	if !slices.Contains(u.Wishlists, wishlistID) {
		u.Wishlists = append(u.Wishlists, wishlistID)
	}
	return nil
}

func (r *MemoryRepository) RemoveOwnedWishlist(ctx context.Context, authID, wishlistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[authID]
	if !ok {
		return common.ErrNotFound
	}
	u.Wishlists = slices.DeleteFunc(u.Wishlists, func(id string) bool { return id == wishlistID })
	return nil
}

func (r *MemoryRepository) AddSharedWishlist(ctx context.Context, email, wishlistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			if !slices.Contains(u.SharedWishlists, wishlistID) {
				u.SharedWishlists = append(u.SharedWishlists, wishlistID)
			}
			return nil
		}
	}
	return common.ErrNotFound
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Wishlists = slices.Clone(u.Wishlists)
	c.SharedWishlists = slices.Clone(u.SharedWishlists)
	return &c
}
