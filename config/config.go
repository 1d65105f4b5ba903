// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	AppName       string        `mapstructure:"APP_NAME"`
	Port          string        `mapstructure:"PORT"`
	RedisURL      string        `mapstructure:"REDIS_URL"`
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	SeedFeed      bool          `mapstructure:"SEED_FEED"`
	FeedChannel   string        `mapstructure:"FEED_CHANNEL"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig loads application configuration from an optional .env file,
// config.yml in the working directory and environment variables, in that order
// of increasing precedence.
func LoadConfig() *Config {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	return cfg
}

// Load is LoadConfig with an explicit search path and an error return.
func Load(path string) (*Config, error) {
	// .env is a development convenience; its absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "Campus LinkHub")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("SESSION_SECRET", "linkhub-dev-secret-change-in-production")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SEED_FEED", true)
	v.SetDefault("FEED_CHANNEL", "linkhub:feed")
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, err
		}
		log.Println("Config file not found; using environment variables and defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
