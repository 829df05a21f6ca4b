package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"stadium-api/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeCatalog parses a catalog document and validates every record.
// A single malformed record, or anything after the document, fails the whole catalog.
func DecodeCatalog(r io.Reader) (models.Catalog, error) {
	dec := json.NewDecoder(r)

	var catalog models.Catalog
	if err := dec.Decode(&catalog); err != nil {
		return models.Catalog{}, fmt.Errorf("repository: failed to decode catalog: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.Catalog{}, fmt.Errorf("repository: unexpected data after catalog document")
	}
	if err := ValidateCatalog(catalog); err != nil {
		return models.Catalog{}, err
	}
	return catalog, nil
}

// ValidateCatalog checks the catalog shape and the required fields of each record.
func ValidateCatalog(catalog models.Catalog) error {
	if catalog.Stadiums == nil {
		return fmt.Errorf("repository: catalog has no stadiums list")
	}
	if err := validate.Struct(catalog); err != nil {
		return fmt.Errorf("repository: invalid catalog: %w", err)
	}
	return nil
}
