package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StoreConfig holds the paths of the local SQLite database and the first-run
// sentinel file.
type StoreConfig struct {
	DBPath       string
	SentinelPath string
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from
		// the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("PORT", "3000"),
		},
		Store: StoreConfig{
			DBPath:       getenvWithDefault("DB_PATH", "warehouse.db"),
			SentinelPath: getenvWithDefault("SENTINEL_PATH", "app_config.txt"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}
	if c.Store.DBPath == "" {
		return errors.New("DB_PATH must be provided")
	}
	if c.Store.SentinelPath == "" {
		return errors.New("SENTINEL_PATH must be provided")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
