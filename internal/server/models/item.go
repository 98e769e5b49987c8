package models

import "time"

// Item mirrors a document in the items collection. An item belongs to
// exactly one wishlist; the wishlist owns its lifecycle.
//
// Gifter is the claim field: empty means unclaimed, otherwise it holds the
// email of the recipient who claimed the item. The field is written without
// omitempty so an unclaimed item stores an explicit empty string and the
// conditional claim update can match on it.
type Item struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Supplier  string    `bson:"supplier" json:"supplier"`
	Gifter    string    `bson:"gifter" json:"gifter,omitempty"`
	CreatedAt time.Time `bson:"date_created" json:"dateCreated"`
}
