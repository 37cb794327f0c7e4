package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enumerated size and color tokens accepted on a product.
var (
	ProductSizes  = []string{"XS", "S", "M", "L", "XL", "XXL"}
	ProductColors = []string{"Black", "White", "Blue", "Red", "Green", "Gray"}
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Discount     float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	CountInStock int                `bson:"count_in_stock" json:"countInStock"`
	Category     primitive.ObjectID `bson:"category" json:"category"`
	Images       []string           `bson:"images" json:"images"`
	Sizes        []string           `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Colors       []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Brand        string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Material     string             `bson:"material,omitempty" json:"material,omitempty"`
	Ratings      float64            `bson:"ratings" json:"ratings"`
	NumReviews   int                `bson:"num_reviews" json:"numReviews"`

	// Derived from Price and Discount on projection, never persisted.
	DiscountedPrice float64 `bson:"-" json:"discountedPrice"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
