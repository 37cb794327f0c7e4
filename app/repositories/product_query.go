package repositories

import (
	"regexp"

	"github.com/stylehub/fashion-store/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildProductQuery maps a canonical filter to a store predicate and sort
// order. All predicates are ANDed. A non-empty Categories list overrides the
// single CategoryID constraint, mirroring last-writer-wins assembly.
func buildProductQuery(f models.ProductFilter) (bson.M, bson.D) {
	query := bson.M{}

	if f.CategoryID != "" {
		query["category"] = categoryRef(f.CategoryID)
	}
	if len(f.Categories) > 0 {
		refs := make([]interface{}, 0, len(f.Categories))
		for _, c := range f.Categories {
			refs = append(refs, categoryRef(c))
		}
		query["category"] = bson.M{"$in": refs}
	}

	if f.SearchQuery != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(f.SearchQuery), "$options": "i"}
	}

	// Both bounds or no price predicate at all; bounds are inclusive.
	if f.MinPrice != nil && f.MaxPrice != nil {
		query["price"] = bson.M{"$gte": *f.MinPrice, "$lte": *f.MaxPrice}
	}

	if len(f.Sizes) > 0 {
		query["sizes"] = bson.M{"$in": f.Sizes}
	}
	if len(f.Colors) > 0 {
		query["colors"] = bson.M{"$in": f.Colors}
	}
	if f.Brand != "" {
		query["brand"] = f.Brand
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	switch f.SortBy {
	case models.SortPriceAsc:
		sort = bson.D{{Key: "price", Value: 1}}
	case models.SortPriceDesc:
		sort = bson.D{{Key: "price", Value: -1}}
	}
	return query, sort
}

// categoryRef converts a raw category parameter to an ObjectID when it is a
// valid hex id; otherwise the raw string is matched (and matches nothing,
// which is the degrade-to-empty behavior for garbage input).
func categoryRef(raw string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return oid
	}
	return raw
}
