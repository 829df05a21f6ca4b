package service

import (
	"context"

	"stadium-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalogLoader is a mock implementation of the CatalogLoader interface
type MockCatalogLoader struct {
	mock.Mock
}

// LoadCatalog implements CatalogLoader.
func (m *MockCatalogLoader) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Catalog), args.Error(1)
}

func stadium(id, sport, league string) models.Stadium {
	return models.Stadium{ID: id, Team: id + " team", Sport: sport, League: league, Name: id + " park"}
}
