package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
	"github.com/stylehub/fashion-store/app/cache"
	"github.com/stylehub/fashion-store/app/configs"
	"github.com/stylehub/fashion-store/app/handlers"
	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/middlewares"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/services"
	"github.com/unrolled/render"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRouter wires repositories, services and handlers onto the API router.
func NewRouter(db *mongo.Database, rdb *redis.Client, env configs.ENV) *mux.Router {
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	userRepo := repositories.NewUserRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)

	var responseCache services.ResponseCache
	if rdb != nil {
		responseCache = cache.New(rdb, "fashion:", env.CacheTTL)
	}

	tokens := services.NewTokenService(env.JWTAccessSecret, env.JWTRefreshSecret)
	catalog := services.NewCatalogService(productRepo, categoryRepo, responseCache, env.ServerURL)
	auth := services.NewAuthService(userRepo, tokens)
	wishlist := services.NewWishlistService(wishlistRepo, productRepo, env.ServerURL)

	renderer := render.New()
	validate := helpers.NewValidator()
	cookies := securecookie.New([]byte(env.CookieHashKey), []byte(env.CookieBlockKey))

	productHandler := handlers.NewProductHandler(catalog, renderer, validate)
	categoryHandler := handlers.NewCategoryHandler(catalog, renderer, validate)
	authHandler := handlers.NewAuthHandler(auth, renderer, validate, cookies, env.AppEnv == "production")
	wishlistHandler := handlers.NewWishlistHandler(wishlist, renderer, validate)

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.RequestIDMiddleware)
	api.Use(middlewares.LoggingMiddleware)
	api.Use(middlewares.CORSMiddleware(env.AllowedOrigins))

	// mux only runs Use middleware on a matched route, and the resource
	// routes are method-restricted. This catch-all makes preflight requests
	// match so the CORS middleware can answer them.
	api.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = renderer.JSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}).Methods("GET")

	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", productHandler.Products).Methods("GET")
	products.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	products.HandleFunc("/{slug}", productHandler.ProductDetail).Methods("GET")
	products.HandleFunc("/{slug}", productHandler.UpdateProduct).Methods("PUT")
	products.HandleFunc("/{slug}", productHandler.DeleteProduct).Methods("DELETE")

	categories := api.PathPrefix("/categories").Subrouter()
	categories.HandleFunc("", categoryHandler.Categories).Methods("GET")
	categories.HandleFunc("", categoryHandler.CreateCategory).Methods("POST")
	categories.HandleFunc("/{id}", categoryHandler.CategoryDetail).Methods("GET")
	categories.HandleFunc("/{id}", categoryHandler.UpdateCategory).Methods("PUT")
	categories.HandleFunc("/{id}", categoryHandler.DeleteCategory).Methods("DELETE")

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/register", authHandler.Register).Methods("POST")
	authRoutes.HandleFunc("/login", authHandler.Login).Methods("POST")
	authRoutes.HandleFunc("/refresh-token", authHandler.RefreshToken).Methods("POST")
	authRoutes.Handle("/me", middlewares.RequireAuth(tokens)(http.HandlerFunc(authHandler.CurrentUser))).Methods("GET")

	wishlistRoutes := api.PathPrefix("/wishlist").Subrouter()
	wishlistRoutes.Use(middlewares.RequireAuth(tokens))
	wishlistRoutes.HandleFunc("", wishlistHandler.Wishlist).Methods("GET")
	wishlistRoutes.HandleFunc("", wishlistHandler.AddToWishlist).Methods("POST")
	wishlistRoutes.HandleFunc("/{productId}", wishlistHandler.RemoveFromWishlist).Methods("DELETE")

	router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(env.ImagesDir))),
	)

	return router
}
