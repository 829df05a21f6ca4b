package service

import (
	"context"
	"fmt"

	"stadium-api/internal/models"
)

// CatalogService exposes read-only views of the stadium catalog
type CatalogService struct {
	loader CatalogLoader
}

// NewCatalogService creates a new catalog service
func NewCatalogService(loader CatalogLoader) *CatalogService {
	return &CatalogService{loader: loader}
}

// ListAll returns the catalog as loaded.
func (s *CatalogService) ListAll(ctx context.Context) (*models.Catalog, error) {
	catalog, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}
	if catalog.Stadiums == nil {
		catalog.Stadiums = []models.Stadium{}
	}
	return &catalog, nil
}

// DistinctSports returns each sport of the catalog once, in first-seen order.
func (s *CatalogService) DistinctSports(ctx context.Context) ([]string, error) {
	catalog, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}

	seen := make(map[string]struct{})
	sports := []string{}
	for _, stadium := range catalog.Stadiums {
		if _, ok := seen[stadium.Sport]; ok {
			continue
		}
		seen[stadium.Sport] = struct{}{}
		sports = append(sports, stadium.Sport)
	}
	return sports, nil
}
