package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"stadium-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// Schema creates the stadiums table used by PostgresLoader and the importer.
const Schema = `
	CREATE TABLE IF NOT EXISTS stadiums (
		id TEXT PRIMARY KEY,
		team TEXT NOT NULL DEFAULT '',
		sport TEXT NOT NULL,
		league TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		hints JSONB,
		name TEXT NOT NULL DEFAULT '',
		radius DOUBLE PRECISION,
		position INTEGER NOT NULL DEFAULT 0
	);
`

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresLoader reads the catalog from the stadiums table.
type PostgresLoader struct {
	db Querier
}

// NewPostgresLoader creates a new PostgreSQL catalog loader
func NewPostgresLoader(db Querier) *PostgresLoader {
	return &PostgresLoader{db: db}
}

// LoadCatalog returns every stadium in import order.
func (r *PostgresLoader) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	sql := `
		SELECT
			id,
			team,
			sport,
			league,
			latitude,
			longitude,
			hints,
			name,
			radius
		FROM stadiums
		ORDER BY position, id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("repository: failed to execute catalog query: %w", err)
	}
	defer rows.Close()

	stadiums := []models.Stadium{}
	for rows.Next() {
		var (
			s     = models.Stadium{Coordinates: &models.Coordinates{}}
			hints []byte
		)
		err := rows.Scan(
			&s.ID,
			&s.Team,
			&s.Sport,
			&s.League,
			&s.Coordinates.Lat,
			&s.Coordinates.Lng,
			&hints,
			&s.Name,
			&s.Radius,
		)
		if err != nil {
			return models.Catalog{}, fmt.Errorf("repository: failed to scan stadium: %w", err)
		}
		if len(hints) > 0 {
			s.Hints = json.RawMessage(hints)
		}
		stadiums = append(stadiums, s)
	}

	if err := rows.Err(); err != nil {
		return models.Catalog{}, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	catalog := models.Catalog{Stadiums: stadiums}
	if err := ValidateCatalog(catalog); err != nil {
		return models.Catalog{}, err
	}
	return catalog, nil
}

// CopyRows converts a catalog into rows for pgx.CopyFrom into the stadiums table.
func CopyRows(catalog models.Catalog) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(catalog.Stadiums), func(i int) ([]any, error) {
		s := catalog.Stadiums[i]
		if s.Coordinates == nil {
			return nil, fmt.Errorf("repository: stadium %q has no coordinates", s.ID)
		}
		var hints []byte
		if len(s.Hints) > 0 {
			hints = s.Hints
		}
		return []any{s.ID, s.Team, s.Sport, s.League, s.Coordinates.Lat, s.Coordinates.Lng, hints, s.Name, s.Radius, i}, nil
	})
}

// CopyColumns lists the columns filled by CopyRows, in order.
var CopyColumns = []string{"id", "team", "sport", "league", "latitude", "longitude", "hints", "name", "radius", "position"}
