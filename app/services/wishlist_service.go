package services

import (
	"context"
	"fmt"

	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/models"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/utils/calc"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistService manages a user's wishlist. Every operation returns the
// populated wishlist (product documents, newest addition first).
type WishlistService struct {
	wishlist  repositories.WishlistRepositoryImpl
	products  repositories.ProductRepositoryImpl
	serverURL string
}

func NewWishlistService(
	wishlist repositories.WishlistRepositoryImpl,
	products repositories.ProductRepositoryImpl,
	serverURL string,
) *WishlistService {
	return &WishlistService{wishlist: wishlist, products: products, serverURL: serverURL}
}

func (s *WishlistService) Add(ctx context.Context, userID, productID primitive.ObjectID) ([]models.Product, error) {
	// The product must exist before it can be wished for.
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.wishlist.Add(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID primitive.ObjectID) ([]models.Product, error) {
	if err := s.wishlist.Remove(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("remove wishlist item: %w", err)
	}
	return s.List(ctx, userID)
}

func (s *WishlistService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error) {
	items, err := s.wishlist.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Product)
	}

	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load wishlist products: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Preserve wishlist order; skip products deleted since they were added.
	ordered := make([]models.Product, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.Product]
		if !ok {
			continue
		}
		for i, img := range p.Images {
			p.Images[i] = helpers.FullImageURL(s.serverURL, img)
		}
		p.DiscountedPrice = calc.DiscountedPrice(p.Price, p.Discount)
		ordered = append(ordered, p)
	}
	return ordered, nil
}
