package seeders

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gosimple/slug"
	"github.com/stylehub/fashion-store/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var categories = []models.Category{
	{Title: "Men's Fashion", Description: "Shop online for latest men's fashion trends"},
	{Title: "Women's Fashion", Description: "Shop online for latest women's fashion trends"},
	{Title: "Kids' Fashion", Description: "Shop online for latest kids' fashion trends"},
	{Title: "Sportswear", Description: "Shop online for latest sportswear"},
	{Title: "Shoes", Description: "Shop online for latest shoes trends"},
	{Title: "Accessories", Description: "Shop online for latest accessories trends"},
	{Title: "Watches", Description: "Shop online for latest watches trends"},
	{Title: "Handbags", Description: "Shop online for latest handbags trends"},
}

var products = []models.Product{
	{
		Name:         "Classic Cotton T-Shirt",
		Description:  "A comfortable 100% cotton t-shirt perfect for everyday wear",
		Price:        25,
		Discount:     10,
		CountInStock: 50,
		Images:       []string{"images/p1.jpg", "images/p1-1.jpg"},
		Sizes:        []string{"S", "M", "L", "XL"},
		Colors:       []string{"Black", "White", "Gray"},
		Brand:        "ComfortWear",
		Material:     "100% Cotton",
		Ratings:      4.5,
		NumReviews:   120,
	},
	{
		Name:         "Slim Fit Denim Jeans",
		Description:  "Stylish and comfortable slim-fit blue denim jeans",
		Price:        55,
		Discount:     15,
		CountInStock: 30,
		Images:       []string{"images/p2.jpg", "images/p2-1.jpg", "images/p2-2.jpg"},
		Sizes:        []string{"S", "M", "L"},
		Colors:       []string{"Blue", "Black"},
		Brand:        "DenimPro",
		Material:     "Stretch Denim",
		Ratings:      4.7,
		NumReviews:   85,
	},
	{
		Name:         "Running Performance Sneakers",
		Description:  "High-performance running shoes with advanced cushioning",
		Price:        75,
		Discount:     20,
		CountInStock: 20,
		Images:       []string{"images/p3.jpg", "images/p3-1.jpg", "images/p3-2.jpg"},
		Sizes:        []string{"S", "M", "L", "XL"},
		Colors:       []string{"White", "Red", "Black"},
		Brand:        "SpeedRun",
		Material:     "Breathable Mesh",
		Ratings:      4.9,
		NumReviews:   200,
	},
	{
		Name:         "Leather Biker Jacket",
		Description:  "Stylish leather jacket for a bold and edgy look",
		Price:        150,
		Discount:     5,
		CountInStock: 15,
		Images:       []string{"images/p4.jpg", "images/p4-1.jpg", "images/p4-2.jpg"},
		Sizes:        []string{"M", "L", "XL"},
		Colors:       []string{"Black"},
		Brand:        "UrbanEdge",
		Material:     "Genuine Leather",
		Ratings:      4.6,
		NumReviews:   45,
	},
	{
		Name:         "Wool Winter Sweater",
		Description:  "Warm and cozy wool sweater for cold winter days",
		Price:        65,
		Discount:     12,
		CountInStock: 25,
		Images:       []string{"images/p5.jpg", "images/p5-1.jpg", "images/p5-2.jpg"},
		Sizes:        []string{"S", "M", "L", "XL"},
		Colors:       []string{"Gray", "Green", "White"},
		Brand:        "WinterComfort",
		Material:     "100% Merino Wool",
		Ratings:      4.8,
		NumReviews:   90,
	},
	{
		Name:         "Athletic Training Shorts",
		Description:  "Lightweight and breathable shorts for intense workouts",
		Price:        35,
		Discount:     8,
		CountInStock: 40,
		Images:       []string{"images/p6.jpg", "images/p6-1.jpg"},
		Sizes:        []string{"S", "M", "L"},
		Colors:       []string{"Black", "Blue", "Red"},
		Brand:        "FitGear",
		Material:     "Quick-Dry Polyester",
		Ratings:      4.4,
		NumReviews:   75,
	},
}

// Seed clears the catalog collections and loads the demo fashion catalog.
// Each product gets its slug derived from the name and a random category.
func Seed(ctx context.Context, db *mongo.Database) error {
	productCol := db.Collection("products")
	categoryCol := db.Collection("categories")

	if _, err := productCol.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	if _, err := categoryCol.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	log.Println("Database cleared")

	now := time.Now()
	categoryDocs := make([]interface{}, len(categories))
	for i := range categories {
		categories[i].CreatedAt = now
		categories[i].UpdatedAt = now
		categoryDocs[i] = categories[i]
	}
	res, err := categoryCol.InsertMany(ctx, categoryDocs)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	log.Println("Categories seeded")

	productDocs := make([]interface{}, len(products))
	for i := range products {
		p := products[i]
		p.Slug = slug.Make(p.Name)
		p.Category = res.InsertedIDs[rand.Intn(len(res.InsertedIDs))].(primitive.ObjectID)
		p.CreatedAt = now
		p.UpdatedAt = now
		productDocs[i] = p
	}
	if _, err := productCol.InsertMany(ctx, productDocs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	log.Println("Products seeded")

	return nil
}
