package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/stylehub/fashion-store/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepositoryImpl interface {
	Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, slug string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, slug string) error
	EnsureIndexes(ctx context.Context) error
}

type productRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepositoryImpl {
	return &productRepository{col: db.Collection("products")}
}

func (p *productRepository) Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query, sort := buildProductQuery(filter)

	cur, err := p.col.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := p.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	cur, err := p.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := p.col.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (p *productRepository) Update(ctx context.Context, slug string, product *models.Product) (*models.Product, error) {
	update := bson.M{
		"name":           product.Name,
		"slug":           product.Slug,
		"description":    product.Description,
		"price":          product.Price,
		"discount":       product.Discount,
		"count_in_stock": product.CountInStock,
		"category":       product.Category,
		"images":         product.Images,
		"sizes":          product.Sizes,
		"colors":         product.Colors,
		"brand":          product.Brand,
		"material":       product.Material,
		"updated_at":     time.Now(),
	}

	var updated models.Product
	err := p.col.FindOneAndUpdate(
		ctx,
		bson.M{"slug": slug},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &updated, nil
}

func (p *productRepository) Delete(ctx context.Context, slug string) error {
	err := p.col.FindOneAndDelete(ctx, bson.M{"slug": slug}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (p *productRepository) EnsureIndexes(ctx context.Context) error {
	_, err := p.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}
