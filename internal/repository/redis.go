package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stadium-api/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCatalogNotFound is returned when the catalog key does not exist in Redis.
var ErrCatalogNotFound = errors.New("repository: catalog not found")

// RedisGetter is the subset of the redis client used by RedisLoader.
type RedisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisLoader reads the catalog JSON document stored under a single key.
type RedisLoader struct {
	client RedisGetter
	key    string
}

// NewRedisLoader creates a loader reading key from client.
func NewRedisLoader(client RedisGetter, key string) *RedisLoader {
	return &RedisLoader{client: client, key: key}
}

// LoadCatalog fetches and decodes the catalog document.
func (l *RedisLoader) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	data, err := l.client.Get(ctx, l.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Catalog{}, fmt.Errorf("%w: key %q", ErrCatalogNotFound, l.key)
		}
		return models.Catalog{}, fmt.Errorf("repository: failed to read catalog from redis: %w", err)
	}

	return DecodeCatalog(strings.NewReader(data))
}
