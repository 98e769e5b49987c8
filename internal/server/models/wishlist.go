package models

import "time"

// Wishlist mirrors a document in the wishlists collection. Items holds the
// contained item ids in creation order; SharedWith holds the recipient
// emails the list has been shared with.
type Wishlist struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Owner      string    `bson:"owner" json:"owner"`
	Items      []string  `bson:"items" json:"items"`
	SharedWith []string  `bson:"shared_with" json:"sharedWith"`
	CreatedAt  time.Time `bson:"date_created" json:"dateCreated"`
}
