package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestTokenSource_MapboxToken(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		file     string
		expected string
	}{
		{
			name:     "environment wins over file",
			env:      "pk.env",
			file:     `{"mapbox_token":"pk.file"}`,
			expected: "pk.env",
		},
		{
			name:     "falls back to config file",
			file:     `{"mapbox_token":"pk.file"}`,
			expected: "pk.file",
		},
		{
			name:     "placeholder means no token",
			file:     `{"mapbox_token":"YOUR_MAPBOX_TOKEN_HERE"}`,
			expected: "",
		},
		{
			name:     "file without token",
			file:     `{}`,
			expected: "",
		},
		{
			name:     "broken file",
			file:     `{not json`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvMapboxToken, tt.env)
			source := NewTokenSource(writeConfigFile(t, tt.file))

			assert.Equal(t, tt.expected, source.MapboxToken())
		})
	}
}

func TestTokenSource_MissingFile(t *testing.T) {
	t.Setenv(EnvMapboxToken, "")
	source := NewTokenSource(filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, "", source.MapboxToken())
}
