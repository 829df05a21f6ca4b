package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Catalog sources understood by the API.
const (
	SourceFile     = "file"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	DataPath      string `mapstructure:"DATA_PATH"`
	WebDir        string `mapstructure:"WEB_DIR"`
	ConfigFile    string `mapstructure:"CONFIG_FILE"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	RedisKey      string `mapstructure:"REDIS_KEY"`
}

var defaults = map[string]string{
	"SERVER_ADDRESS": ":8080",
	"GIN_MODE":       "release",
	"LOG_LEVEL":      "info",
	"CATALOG_SOURCE": SourceFile,
	"DATA_PATH":      "data/stadiums.json",
	"WEB_DIR":        "web",
	"CONFIG_FILE":    "config.json",
	"DB_SOURCE":      "",
	"REDIS_URL":      "",
	"REDIS_KEY":      "stadiums:catalog",
}

// LoadConfig reads app.env from path when present and overlays environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected catalog source has what it needs.
func (c Config) Validate() error {
	switch c.CatalogSource {
	case SourceFile:
		if c.DataPath == "" {
			return errors.New("config: DATA_PATH is required for the file catalog source")
		}
	case SourceRedis:
		if c.RedisURL == "" {
			return errors.New("config: REDIS_URL is required for the redis catalog source")
		}
	case SourcePostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required for the postgres catalog source")
		}
	default:
		return fmt.Errorf("config: unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}
