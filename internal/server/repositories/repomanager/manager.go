// Package repomanager aggregates the per-entity repositories behind a single
// capability that is passed explicitly into each service, so tests can
// substitute the in-memory implementation for the Mongo one.
package repomanager

import (
	"github.com/soplanita/giftgenie/internal/server/repositories/items"
	"github.com/soplanita/giftgenie/internal/server/repositories/users"
	"github.com/soplanita/giftgenie/internal/server/repositories/wishlists"
)

type Manager interface {
	Users() users.Repository
	Wishlists() wishlists.Repository
	Items() items.Repository
}
