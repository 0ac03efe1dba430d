// Package config provides configuration management for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/youcisla/streamsub/internal/constants"
)

const (
	defaultConfigFile   = "config.json"
	defaultDatabasePath = "./streamsub.db"
)

// Config holds the service configuration.
// It supports loading from a .env file, environment variables and an
// optional JSON file; environment variables take precedence.
type Config struct {
	Port         string `json:"PORT"`
	DatabasePath string `json:"DATABASE_PATH"`

	// Platform polling credentials. A platform without credentials is
	// simply not polled; its providers still serve whatever the store holds.
	TwitchClientID  string `json:"TWITCH_CLIENT_ID"`
	TwitchAppToken  string `json:"TWITCH_APP_TOKEN"`
	KickAccessToken string `json:"KICK_ACCESS_TOKEN"`
	YouTubeAPIKey   string `json:"YOUTUBE_API_KEY"`
}

// Load reads configuration from a .env file (when present), environment
// variables and an optional JSON file.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         constants.DefaultPort,
		DatabasePath: defaultDatabasePath,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	setIfPresent := func(target *string, key string) {
		if value := os.Getenv(key); value != "" {
			*target = value
		}
	}

	setIfPresent(&c.Port, "PORT")
	setIfPresent(&c.DatabasePath, "DATABASE_PATH")
	setIfPresent(&c.TwitchClientID, "TWITCH_CLIENT_ID")
	setIfPresent(&c.TwitchAppToken, "TWITCH_APP_TOKEN")
	setIfPresent(&c.KickAccessToken, "KICK_ACCESS_TOKEN")
	setIfPresent(&c.YouTubeAPIKey, "YOUTUBE_API_KEY")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
