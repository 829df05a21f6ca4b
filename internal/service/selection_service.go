package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"stadium-api/internal/models"
)

// ErrNoEligibleStadiums means filtering and exclusion left nothing to pick from.
var ErrNoEligibleStadiums = errors.New("service: no eligible stadiums")

// CatalogLoader interface for dependency injection
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (models.Catalog, error)
}

// SelectionService picks random stadiums for a game round
type SelectionService struct {
	loader CatalogLoader
	intn   func(n int) int
}

// NewSelectionService creates a new selection service
func NewSelectionService(loader CatalogLoader) *SelectionService {
	return &SelectionService{loader: loader, intn: rand.Intn}
}

// SelectRandom loads the catalog, keeps the stadiums matching league that are not
// excluded, and returns one of them chosen uniformly at random.
func (s *SelectionService) SelectRandom(ctx context.Context, league string, exclude []string) (*models.StadiumProjection, error) {
	catalog, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	eligible := make([]models.Stadium, 0, len(catalog.Stadiums))
	for _, stadium := range catalog.Stadiums {
		if !MatchesLeague(league, stadium) {
			continue
		}
		if _, skip := excluded[stadium.ID]; skip {
			continue
		}
		eligible = append(eligible, stadium)
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligibleStadiums
	}

	projection := eligible[s.intn(len(eligible))].Project()
	return &projection, nil
}
