package wishlists

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
)

// MemoryRepository is an in-memory Repository used as the storage double in
// tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	wishlists map[string]*models.Wishlist
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{wishlists: make(map[string]*models.Wishlist)}
}

func (r *MemoryRepository) Insert(ctx context.Context, w *models.Wishlist) (*models.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cloneWishlist(w)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Items == nil {
		c.Items = []string{}
	}
	if c.SharedWith == nil {
		c.SharedWith = []string{}
	}
	r.wishlists[c.ID] = c
	return cloneWishlist(c), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wishlists[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneWishlist(w), nil
}

func (r *MemoryRepository) GetMany(ctx context.Context, ids []string) ([]*models.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Wishlist, 0, len(ids))
	for _, id := range ids {
		if w, ok := r.wishlists[id]; ok {
			result = append(result, cloneWishlist(w))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) SetName(ctx context.Context, id, name string) error {
	return r.update(id, func(w *models.Wishlist) {
		w.Name = name
	})
}

func (r *MemoryRepository) AddRecipient(ctx context.Context, id, email string) error {
	return r.update(id, func(w *models.Wishlist) {
		if !slices.Contains(w.SharedWith, email) {
			w.SharedWith = append(w.SharedWith, email)
		}
	})
}

func (r *MemoryRepository) AddItem(ctx context.Context, id, itemID string) error {
	return r.update(id, func(w *models.Wishlist) {
		if !slices.Contains(w.Items, itemID) {
			w.Items = append(w.Items, itemID)
		}
	})
}

func (r *MemoryRepository) RemoveItem(ctx context.Context, id, itemID string) error {
	return r.update(id, func(w *models.Wishlist) {
		w.Items = slices.DeleteFunc(w.Items, func(i string) bool { return i == itemID })
	})
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wishlists, id)
	return nil
}

func (r *MemoryRepository) update(id string, fn func(*models.Wishlist)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wishlists[id]
	if !ok {
		return common.ErrNotFound
	}
	fn(w)
	return nil
}

func cloneWishlist(w *models.Wishlist) *models.Wishlist {
	c := *w
	c.Items = slices.Clone(w.Items)
	c.SharedWith = slices.Clone(w.SharedWith)
	return &c
}
