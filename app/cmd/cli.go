package cmd

import (
	"context"
	"log"
	"os"

	"github.com/stylehub/fashion-store/app/configs"
	"github.com/stylehub/fashion-store/app/db/fakers"
	"github.com/stylehub/fashion-store/app/db/seeders"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/urfave/cli/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "indexes",
				Usage: "Create the unique indexes (product slug, user email, wishlist pair)",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, cleanup, err := openDatabase(ctx)
					if err != nil {
						return err
					}
					defer cleanup()

					if err := repositories.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
						return err
					}
					if err := repositories.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
						return err
					}
					if err := repositories.NewWishlistRepository(db).EnsureIndexes(ctx); err != nil {
						return err
					}
					log.Println("✅ Indexes created")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Reset and seed the demo fashion catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, cleanup, err := openDatabase(ctx)
					if err != nil {
						return err
					}
					defer cleanup()

					if err := seeders.Seed(ctx, db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "seed-fake",
				Usage: "Add faker-generated demo products to existing categories",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 20, Usage: "number of products to generate"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, cleanup, err := openDatabase(ctx)
					if err != nil {
						return err
					}
					defer cleanup()

					return seedFake(ctx, db, int(c.Int("count")))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(ctx context.Context) (*mongo.Database, func(), error) {
	env := configs.LoadEnv()
	client, err := configs.OpenConnection(ctx, env)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = client.Disconnect(ctx) }
	return client.Database(env.MongoDB), cleanup, nil
}

func seedFake(ctx context.Context, db *mongo.Database, count int) error {
	categoryRepo := repositories.NewCategoryRepository(db)
	categories, err := categoryRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		log.Println("No categories found; run `seed` first")
		return nil
	}

	docs := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		category := categories[i%len(categories)]
		docs = append(docs, fakers.ProductFaker(category.ID))
	}

	if _, err := db.Collection("products").InsertMany(ctx, docs); err != nil {
		return err
	}

	total, _ := db.Collection("products").CountDocuments(ctx, bson.M{})
	log.Printf("✅ Generated %d products (%d total)", count, total)
	return nil
}
