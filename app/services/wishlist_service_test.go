package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stylehub/fashion-store/app/models"
	"github.com/stylehub/fashion-store/app/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeWishlistRepo keeps items in insertion order and returns them newest
// first, the way the real store sorts on created_at.
type fakeWishlistRepo struct {
	items []models.WishlistItem
}

func (f *fakeWishlistRepo) Get(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistItem, error) {
	out := []models.WishlistItem{}
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].User == userID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Add(ctx context.Context, userID, productID primitive.ObjectID) error {
	for _, item := range f.items {
		if item.User == userID && item.Product == productID {
			return repositories.ErrDuplicate
		}
	}
	f.items = append(f.items, models.WishlistItem{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Product:   productID,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeWishlistRepo) Remove(ctx context.Context, userID, productID primitive.ObjectID) error {
	for i, item := range f.items {
		if item.User == userID && item.Product == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeWishlistRepo) EnsureIndexes(ctx context.Context) error { return nil }

func wishlistFixture() (*WishlistService, *fakeProductRepo, primitive.ObjectID) {
	products := &fakeProductRepo{products: []models.Product{
		{ID: primitive.NewObjectID(), Name: "Classic Cotton T-Shirt", Slug: "classic-cotton-t-shirt", Price: 25, Discount: 10, Images: []string{"images/tshirt.jpg"}},
		{ID: primitive.NewObjectID(), Name: "Slim Fit Denim Jeans", Slug: "slim-fit-denim-jeans", Price: 55},
	}}
	svc := NewWishlistService(&fakeWishlistRepo{}, products, "http://localhost:5000")
	return svc, products, primitive.NewObjectID()
}

func TestWishlistAdd(t *testing.T) {
	svc, products, userID := wishlistFixture()
	ctx := context.Background()

	list, err := svc.Add(ctx, userID, products.products[0].ID)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("wishlist has %d items, want 1", len(list))
	}
	if list[0].Images[0] != "http://localhost:5000/images/tshirt.jpg" {
		t.Errorf("image = %q, want absolute URL", list[0].Images[0])
	}
	if list[0].DiscountedPrice != 22.5 {
		t.Errorf("DiscountedPrice = %v, want 22.5", list[0].DiscountedPrice)
	}
}

func TestWishlistAdd_UnknownProduct(t *testing.T) {
	svc, _, userID := wishlistFixture()

	_, err := svc.Add(context.Background(), userID, primitive.NewObjectID())
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestWishlistAdd_Duplicate(t *testing.T) {
	svc, products, userID := wishlistFixture()
	ctx := context.Background()

	if _, err := svc.Add(ctx, userID, products.products[0].ID); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if _, err := svc.Add(ctx, userID, products.products[0].ID); !errors.Is(err, repositories.ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestWishlistList_NewestFirstSkipsDeleted(t *testing.T) {
	svc, products, userID := wishlistFixture()
	ctx := context.Background()

	if _, err := svc.Add(ctx, userID, products.products[0].ID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, userID, products.products[1].ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("wishlist has %d items, want 2", len(list))
	}
	if list[0].Name != "Slim Fit Denim Jeans" {
		t.Errorf("first item = %q, want the newest addition", list[0].Name)
	}

	// A product deleted from the catalog silently drops out of the list.
	products.products = products.products[:1]
	list, err = svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Classic Cotton T-Shirt" {
		t.Errorf("list after delete = %+v", list)
	}
}

func TestWishlistRemove_Idempotent(t *testing.T) {
	svc, products, userID := wishlistFixture()
	ctx := context.Background()

	if _, err := svc.Add(ctx, userID, products.products[0].ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := svc.Remove(ctx, userID, products.products[0].ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("wishlist has %d items after remove, want 0", len(list))
	}

	if _, err := svc.Remove(ctx, userID, products.products[0].ID); err != nil {
		t.Errorf("second Remove should be a no-op, got %v", err)
	}
}
