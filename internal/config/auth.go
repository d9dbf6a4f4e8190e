package config

import (
	"fmt"
	"time"
)

// AuthConfig holds token signing configuration.
type AuthConfig struct {
	// Secret is the HMAC signing key for access tokens.
	Secret string
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:   GetEnv("AUTH_SECRET", ""),
		TokenTTL: GetEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("AUTH_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	return nil
}
