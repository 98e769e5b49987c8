package repomanager

import (
	"github.com/soplanita/giftgenie/internal/server/repositories/items"
	"github.com/soplanita/giftgenie/internal/server/repositories/users"
	"github.com/soplanita/giftgenie/internal/server/repositories/wishlists"
)

// MemoryManager aggregates the in-memory repositories. The concrete repo
// fields stay exported so tests can reach implementation-specific helpers
// like the items write counter.
type MemoryManager struct {
	UsersRepo     *users.MemoryRepository
	WishlistsRepo *wishlists.MemoryRepository
	ItemsRepo     *items.MemoryRepository
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		UsersRepo:     users.NewMemoryRepository(),
		WishlistsRepo: wishlists.NewMemoryRepository(),
		ItemsRepo:     items.NewMemoryRepository(),
	}
}

func (m *MemoryManager) Users() users.Repository         { return m.UsersRepo }
func (m *MemoryManager) Wishlists() wishlists.Repository { return m.WishlistsRepo }
func (m *MemoryManager) Items() items.Repository         { return m.ItemsRepo }
