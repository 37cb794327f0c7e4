package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem links a user to a product. The (user, product) pair is
// unique, enforced by a compound index.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Product   primitive.ObjectID `bson:"product" json:"product"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
