package configs

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenConnection connects to MongoDB with a bounded retry loop and verifies
// the connection with a ping before handing the client back.
func OpenConnection(ctx context.Context, env ENV) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(env.MongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			pingErr := client.Ping(pingCtx, nil)
			cancel()
			if pingErr == nil {
				log.Println("✅ MongoDB connected.")
				return client, nil
			}
			_ = client.Disconnect(ctx)
			err = pingErr
		}
		log.Printf("❌ MongoDB connection failed (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryDelay)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after %d retries", maxRetries)
}
