package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
	"stadiums": [
		{"id": "fenway", "team": "Red Sox", "sport": "baseball", "league": "MLB", "coordinates": {"lat": 42.3467, "lng": -71.0972}, "hints": ["Green Monster"], "name": "Fenway Park"},
		{"id": "wembley", "team": "England", "sport": "soccer", "league": "International", "coordinates": {"lat": 51.556, "lng": -0.2796}, "hints": ["Arch"], "name": "Wembley Stadium", "radius": 200}
	]
}`

func TestFileLoader_LoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stadiums.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	loader := NewFileLoader(path)

	catalog, err := loader.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Stadiums, 2)
	assert.Equal(t, "fenway", catalog.Stadiums[0].ID)
	assert.Nil(t, catalog.Stadiums[0].Radius)
	require.NotNil(t, catalog.Stadiums[1].Radius)
	assert.Equal(t, 200.0, *catalog.Stadiums[1].Radius)

	again, err := loader.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, again)
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "missing.json"))

	_, err := loader.LoadCatalog(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader("unused.json").LoadCatalog(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
