package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRedisGetter is a mock implementation of the RedisGetter interface
type MockRedisGetter struct {
	mock.Mock
}

func (m *MockRedisGetter) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func TestRedisLoader_LoadCatalog(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		redisErr    error
		expectedLen int
		notFound    bool
		expectError bool
	}{
		{
			name:        "catalog stored",
			value:       sampleCatalog,
			expectedLen: 2,
		},
		{
			name:        "key missing",
			redisErr:    redis.Nil,
			notFound:    true,
			expectError: true,
		},
		{
			name:        "redis failure",
			redisErr:    assert.AnError,
			expectError: true,
		},
		{
			name:        "invalid document",
			value:       `{"stadiums":[{"id":""}]}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockRedisGetter)
			client.On("Get", mock.Anything, "stadiums:catalog").Return(tt.value, tt.redisErr)

			loader := NewRedisLoader(client, "stadiums:catalog")
			catalog, err := loader.LoadCatalog(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, ErrCatalogNotFound))
			} else {
				require.NoError(t, err)
				assert.Len(t, catalog.Stadiums, tt.expectedLen)
			}
			client.AssertExpectations(t)
		})
	}
}
