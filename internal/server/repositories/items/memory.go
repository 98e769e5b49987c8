package items

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soplanita/giftgenie/internal/common"
	"github.com/soplanita/giftgenie/internal/server/models"
)

// MemoryRepository is an in-memory Repository used as the storage double in
// tests. It counts SetGifter writes so tests can assert the no-write
// idempotence guarantee of the claim machine.
type MemoryRepository struct {
	mu           sync.RWMutex
	items        map[string]*models.Item
	gifterWrites int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Item)}
}

func (r *MemoryRepository) Insert(ctx context.Context, it *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *it
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.items[c.ID] = &c
	out := c
	return &out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *it
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) DeleteMany(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}

func (r *MemoryRepository) SetGifter(ctx context.Context, id, prev, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return common.ErrNotFound
	}
	if it.Gifter != prev {
		return common.ErrClaimConflict
	}
	it.Gifter = next
	r.gifterWrites++
	return nil
}

// GifterWrites reports how many successful SetGifter writes have been
// applied.
func (r *MemoryRepository) GifterWrites() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gifterWrites
}
