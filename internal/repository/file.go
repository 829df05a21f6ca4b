package repository

import (
	"context"
	"fmt"
	"os"

	"stadium-api/internal/models"
)

// FileLoader reads the catalog from a JSON file on every call.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the JSON document at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// LoadCatalog opens and decodes the catalog file.
func (l *FileLoader) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return models.Catalog{}, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("repository: failed to open catalog file: %w", err)
	}
	defer f.Close()

	return DecodeCatalog(f)
}
