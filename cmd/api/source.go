package main

import (
	"context"
	"fmt"

	"stadium-api/internal/config"
	"stadium-api/internal/repository"
	"stadium-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// newCatalogLoader opens the configured catalog source. The returned close
// function releases any connection the source holds.
func newCatalogLoader(ctx context.Context, cfg config.Config) (service.CatalogLoader, func(), error) {
	switch cfg.CatalogSource {
	case config.SourceRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return repository.NewRedisLoader(client, cfg.RedisKey), func() { client.Close() }, nil

	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping db: %w", err)
		}
		return repository.NewPostgresLoader(pool), pool.Close, nil

	case config.SourceFile:
		return repository.NewFileLoader(cfg.DataPath), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}
