package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port             string
	AppEnv           string
	ServerURL        string
	MongoURI         string
	MongoDB          string
	RedisAddr        string
	RedisPassword    string
	CacheTTL         time.Duration
	JWTAccessSecret  string
	JWTRefreshSecret string
	CookieHashKey    string
	CookieBlockKey   string
	ImagesDir        string
	AllowedOrigins   []string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		Port:             ":" + getenv("APP_PORT", "5000"),
		AppEnv:           getenv("APP_ENV", "development"),
		ServerURL:        getenv("SERVER_URL", "http://localhost:5000"),
		MongoURI:         getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:          getenv("MONGO_DB", "fashion_store"),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		CacheTTL:         time.Duration(getenvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		JWTAccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		CookieHashKey:    os.Getenv("COOKIE_HASH_KEY"),
		CookieBlockKey:   os.Getenv("COOKIE_BLOCK_KEY"),
		ImagesDir:        getenv("IMAGES_DIR", "./images"),
		AllowedOrigins:   splitList(os.Getenv("ALLOWED_ORIGINS")),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
