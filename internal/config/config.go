package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration shared by the sample functions
type Config struct {
	Environment string `validate:"required"`
	// CustomMessage is nil when CUSTOM_MESSAGE is unset; each handler supplies its own default
	CustomMessage *string
	Region        string `validate:"required"`
	LogLevel      string `validate:"oneof=trace debug info warn warning error fatal panic"`
	// AccountID short-circuits the caller identity lookup when set
	AccountID string
	Server    ServerConfig
	Lambda    ServerlessConfig
}

// ServerConfig holds settings for the local invocation server
type ServerConfig struct {
	Port          string        `validate:"required,numeric"`
	InvokeTimeout time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.SetDefault("INVOKE_TIMEOUT", "3s")

	config := &Config{
		Environment:   v.GetString("ENVIRONMENT"),
		CustomMessage: lookupEnv("CUSTOM_MESSAGE"),
		Region:        v.GetString("AWS_REGION"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		AccountID:     v.GetString("ACCOUNT_ID"),
		Server: ServerConfig{
			Port:          v.GetString("PORT"),
			InvokeTimeout: v.GetDuration("INVOKE_TIMEOUT"),
		},
		Lambda: loadServerlessConfig(),
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// MessageOr returns the configured custom message, or fallback when none is set.
// An explicitly empty CUSTOM_MESSAGE is kept.
func (c *Config) MessageOr(fallback string) string {
	if c.CustomMessage != nil {
		return *c.CustomMessage
	}
	return fallback
}

// lookupEnv distinguishes an unset variable from one set to ""; viper treats both as unset
func lookupEnv(key string) *string {
	if value, ok := os.LookupEnv(key); ok {
		return &value
	}
	return nil
}
