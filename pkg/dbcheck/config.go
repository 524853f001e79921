package dbcheck

import (
	"context"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Config holds connection settings for the bundled checkers.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

var loadEnvOnce sync.Once

// LoadConfig parses checker settings from the environment. A .env file in
// the working directory is loaded once when present; a missing file is not
// an error.
func LoadConfig() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse checker config: %w", err)
	}
	return cfg, nil
}

// NewPostgresFromEnv connects a Postgres checker using DATABASE_URL.
func NewPostgresFromEnv(ctx context.Context) (*Postgres, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewPostgres(pool), nil
}

// NewRedisFromEnv connects a Redis checker using REDIS_URL.
func NewRedisFromEnv(ctx context.Context) (*Redis, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedis(client), nil
}
