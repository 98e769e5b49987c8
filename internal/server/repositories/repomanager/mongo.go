package repomanager

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/soplanita/giftgenie/internal/server/repositories/items"
	"github.com/soplanita/giftgenie/internal/server/repositories/users"
	"github.com/soplanita/giftgenie/internal/server/repositories/wishlists"
)

// MongoManager binds the entity repositories to collections of one database.
type MongoManager struct {
	users     *users.MongoRepository
	wishlists *wishlists.MongoRepository
	items     *items.MongoRepository
}

func NewMongoManager(db *mongo.Database) *MongoManager {
	return &MongoManager{
		users:     users.NewMongoRepository(db),
		wishlists: wishlists.NewMongoRepository(db),
		items:     items.NewMongoRepository(db),
	}
}

func (m *MongoManager) Users() users.Repository         { return m.users }
func (m *MongoManager) Wishlists() wishlists.Repository { return m.wishlists }
func (m *MongoManager) Items() items.Repository         { return m.items }
