package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvMapboxToken is the environment variable checked before the config file.
	EnvMapboxToken = "MAPBOX_TOKEN"
	// PlaceholderToken ships in the example config file and means "no token".
	PlaceholderToken = "YOUR_MAPBOX_TOKEN_HERE"
)

// TokenSource resolves the map provider token on every call so that a changed
// environment or config file is picked up without a restart.
type TokenSource struct {
	configFile string
}

// NewTokenSource creates a token source falling back to the given JSON file.
func NewTokenSource(configFile string) *TokenSource {
	return &TokenSource{configFile: configFile}
}

// MapboxToken returns the token, or an empty string when none is configured.
func (s *TokenSource) MapboxToken() string {
	v := viper.New()
	v.SetConfigType("json")
	_ = v.BindEnv("mapbox_token", EnvMapboxToken)

	if s.configFile != "" {
		v.SetConfigFile(s.configFile)
		// a missing or broken file only means there is no fallback
		_ = v.ReadInConfig()
	}

	token := strings.TrimSpace(v.GetString("mapbox_token"))
	if token == PlaceholderToken {
		return ""
	}
	return token
}
