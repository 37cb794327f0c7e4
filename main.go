package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/stylehub/fashion-store/app/cmd"
	"github.com/stylehub/fashion-store/app/configs"
	"github.com/stylehub/fashion-store/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()
	ctx := context.Background()

	client, err := configs.OpenConnection(ctx, env)
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(env.MongoDB)
	rdb := configs.OpenRedis(ctx, env)

	router := routes.NewRouter(db, rdb, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
