package repositories

import (
	"context"
	"time"

	"github.com/stylehub/fashion-store/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WishlistRepositoryImpl interface {
	Get(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistItem, error)
	Add(ctx context.Context, userID, productID primitive.ObjectID) error
	// Remove is idempotent; removing an item that is not there is not an error.
	Remove(ctx context.Context, userID, productID primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type wishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) WishlistRepositoryImpl {
	return &wishlistRepository{col: db.Collection("wishlists")}
}

func (r *wishlistRepository) Get(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistItem, error) {
	cur, err := r.col.Find(
		ctx,
		bson.M{"user": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.WishlistItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID primitive.ObjectID) error {
	item := models.WishlistItem{
		User:      userID,
		Product:   productID,
		CreatedAt: time.Now(),
	}
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"user": userID, "product": productID})
	return err
}

func (r *wishlistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "product", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
