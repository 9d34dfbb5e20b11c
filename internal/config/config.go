package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	BaseURL         string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	SecretKey       string
	UserUploadDir   string
	FeedUploadDir   string
	SearchIndexPath string
	PageSize        int
	RateLimit       int
	RateLimitWindow int
	IgnoreAuth      bool
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/lexfeed?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		SecretKey:       getEnv("SECRET_KEY", "top-secret!"),
		UserUploadDir:   getEnv("USER_UPLOAD_DIR", "static/images/users"),
		FeedUploadDir:   getEnv("FEED_UPLOAD_DIR", "static/images/feeds"),
		SearchIndexPath: getEnv("SEARCH_INDEX_PATH", "search.bleve"),
		PageSize:        getEnvInt("PAGE_SIZE", 10),
		RateLimit:       getEnvInt("RATE_LIMIT", 0),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),
		IgnoreAuth:      getEnvBool("IGNORE_AUTH", false),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
