package cache

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// noExpiry stands in for "never" where a backend insists on a TTL.
const noExpiry = 10 * 365 * 24 * time.Hour

type Config struct {
	Backend string

	// memory backend
	Capacity           int
	NumShards          int
	EvictionPercentage int

	// redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func DefaultConfig() Config {
	return Config{
		Backend:            BackendMemory,
		Capacity:           10000,
		NumShards:          64,
		EvictionPercentage: 10,
		RedisAddr:          "localhost:6379",
	}
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
		if c.Capacity <= 0 {
			return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
		}
		if c.NumShards <= 0 {
			return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
		}
		if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
			return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return &ConfigError{Field: "RedisAddr", Message: "must not be empty"}
		}
		if c.RedisDB < 0 {
			return &ConfigError{Field: "RedisDB", Message: "must be non-negative"}
		}
	default:
		return &ConfigError{Field: "Backend", Message: "must be memory or redis"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "cache config error in field " + e.Field + ": " + e.Message
}

// New builds the Store selected by cfg.Backend. The caller owns the returned
// store and must Close it.
func New(cfg Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Backend == BackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(client), nil
	}
	return NewMemoryStore(cfg.Capacity, cfg.NumShards, cfg.EvictionPercentage), nil
}
