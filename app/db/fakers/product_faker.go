package fakers

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/stylehub/fashion-store/app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var imagePaths = []string{
	"images/sample-1.jpg",
	"images/sample-2.jpg",
	"images/sample-3.jpg",
}

var brands = []string{"ComfortWear", "DenimPro", "SpeedRun", "UrbanEdge", "FitGear"}

// ProductFaker builds a random demo product in the given category. The slug
// carries a short uuid suffix so repeated runs never collide on names.
func ProductFaker(categoryID primitive.ObjectID) *models.Product {
	name := faker.Word() + " " + faker.Word()
	now := time.Now()

	numImages := rand.Intn(len(imagePaths)) + 1
	images := make([]string, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = imagePaths[rand.Intn(len(imagePaths))]
	}

	return &models.Product{
		Name:         name,
		Slug:         slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:  faker.Sentence(),
		Price:        fakePrice(),
		Discount:     float64(rand.Intn(30)),
		CountInStock: rand.Intn(50) + 1,
		Category:     categoryID,
		Images:       images,
		Sizes:        randomSubset(models.ProductSizes),
		Colors:       randomSubset(models.ProductColors),
		Brand:        brands[rand.Intn(len(brands))],
		Material:     faker.Word(),
		Ratings:      math.Round(rand.Float64()*50) / 10,
		NumReviews:   rand.Intn(200),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func fakePrice() float64 {
	return math.Round(rand.Float64()*20000) / 100
}

func randomSubset(values []string) []string {
	n := rand.Intn(len(values)) + 1
	picked := make([]string, 0, n)
	for _, i := range rand.Perm(len(values))[:n] {
		picked = append(picked, values[i])
	}
	return picked
}
