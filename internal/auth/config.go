package auth

import (
	"fmt"
	"time"
)

// DefaultTokenTTL is how long an issued token stays valid
const DefaultTokenTTL = time.Hour

// AuthConfig holds the token settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
	// Required makes every protected route reject requests without a valid token
	Required bool
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("token TTL must not be negative")
	}
	return nil
}

func (c *AuthConfig) ttl() time.Duration {
	if c.TokenTTL == 0 {
		return DefaultTokenTTL
	}
	return c.TokenTTL
}

func (c *AuthConfig) issuer() string {
	if c.Issuer == "" {
		return "permitpro-backend"
	}
	return c.Issuer
}
