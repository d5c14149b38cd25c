package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
)

type Config struct {
	Port      string
	GinMode   string
	APIPrefix string
	LogLevel  string

	DBDriver string
	DBSource string

	CacheBackend  string
	CacheCapacity int
	CacheShards   int
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ExportDir       string
	ExportWorkers   int
	ExportQueueSize int
	ExportRetention time.Duration

	RateLimit  float64
	RateBurst  int
	CORSOrigin string
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		APIPrefix: getEnv("API_PREFIX", "/api/v1"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "file:menu.db?_foreign_keys=on"),

		CacheBackend:  getEnv("CACHE_BACKEND", cache.BackendMemory),
		CacheCapacity: getEnvInt("CACHE_CAPACITY", 10000),
		CacheShards:   getEnvInt("CACHE_SHARDS", 64),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		ExportDir:       getEnv("EXPORT_DIR", "uploads"),
		ExportWorkers:   getEnvInt("EXPORT_WORKERS", 2),
		ExportQueueSize: getEnvInt("EXPORT_QUEUE_SIZE", 16),
		ExportRetention: time.Duration(getEnvInt("EXPORT_RETENTION_MINUTES", 60)) * time.Minute,

		RateLimit:  getEnvFloat("RATE_LIMIT", 50),
		RateBurst:  getEnvInt("RATE_BURST", 100),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}
}

// Cache converts the cache settings into the cache package config.
func (c *Config) Cache() cache.Config {
	cfg := cache.DefaultConfig()
	cfg.Backend = c.CacheBackend
	cfg.Capacity = c.CacheCapacity
	cfg.NumShards = c.CacheShards
	cfg.RedisAddr = c.RedisAddr
	cfg.RedisPassword = c.RedisPassword
	cfg.RedisDB = c.RedisDB
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.ErrorLogger.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		utils.ErrorLogger.Warnf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
