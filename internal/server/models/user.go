package models

import "time"

// User mirrors a document in the users collection. AuthID is the stable
// identifier minted by the external auth server and carried in access
// tokens; the record itself is created out of band when the account is
// registered.
//
// Wishlists and SharedWishlists are the denormalized owned/shared id sets.
// They are kept in sync with the wishlist-side recipient set by the sharing
// ledger; the wishlist-side set is the authorization source of truth.
type User struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	AuthID          string    `bson:"auth_id" json:"-"`
	Email           string    `bson:"email" json:"email"`
	Wishlists       []string  `bson:"wishlists" json:"wishlists"`
	SharedWishlists []string  `bson:"shared_wishlists" json:"sharedWishlists"`
	CreatedAt       time.Time `bson:"date_created" json:"dateCreated"`
}
