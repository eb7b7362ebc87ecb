package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names, bit-exact.
const (
	ENV_API_KEY             = "TWITTER_API_KEY"
	ENV_API_SECRET          = "TWITTER_API_SECRET"
	ENV_ACCESS_TOKEN        = "TWITTER_ACCESS_TOKEN"
	ENV_ACCESS_TOKEN_SECRET = "TWITTER_ACCESS_TOKEN_SECRET"
	ENV_BEARER_TOKEN        = "TWITTER_BEARER_TOKEN"
	ENV_ANTHROPIC_API_KEY   = "ANTHROPIC_API_KEY"
	ENV_NODE_ENV            = "NODE_ENV"
	ENV_LOG_LEVEL           = "LOG_LEVEL"
)

// Defaults for the optional settings. Set values pass through without
// validation, unrecognized ones included.
const (
	DEFAULT_ENVIRONMENT = "development"
	DEFAULT_LOG_LEVEL   = "info"
)

////////////////////////////////////////////////////////////////////////////////

// Config holds the credentials and runtime settings read from the process
// environment.
type Config struct {
	TwitterAPIKey            string
	TwitterAPISecret         string
	TwitterAccessToken       string
	TwitterAccessTokenSecret string
	TwitterBearerToken       string

	AnthropicAPIKey string

	Environment string // development / production / test
	LogLevel    string // debug / info / warn / error
}

// MissingConfigError reports a required environment variable that is unset
// or empty.
type MissingConfigError struct {
	Variable string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required environment variable: %s", e.Variable)
}

////////////////////////////////////////////////////////////////////////////////

// Load reads the configuration from the process environment, loading a
// .env file first when one exists. Each call returns a fresh value.
func Load() (*Config, error) {
	// a missing .env file is fine, the process environment is authoritative
	_ = godotenv.Load()

	conf := &Config{
		AnthropicAPIKey: os.Getenv(ENV_ANTHROPIC_API_KEY),
		Environment:     getEnvOrDefault(ENV_NODE_ENV, DEFAULT_ENVIRONMENT),
		LogLevel:        getEnvOrDefault(ENV_LOG_LEVEL, DEFAULT_LOG_LEVEL),
	}

	required := []struct {
		name   string
		target *string
	}{
		{ENV_API_KEY, &conf.TwitterAPIKey},
		{ENV_API_SECRET, &conf.TwitterAPISecret},
		{ENV_ACCESS_TOKEN, &conf.TwitterAccessToken},
		{ENV_ACCESS_TOKEN_SECRET, &conf.TwitterAccessTokenSecret},
		{ENV_BEARER_TOKEN, &conf.TwitterBearerToken},
	}
	for _, req := range required {
		value := os.Getenv(req.name)
		if value == "" {
			return nil, &MissingConfigError{Variable: req.name}
		}
		*req.target = value
	}

	return conf, nil
}

// getEnvOrDefault retrieves an environment variable or falls back to the
// given default when it is unset or empty.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
