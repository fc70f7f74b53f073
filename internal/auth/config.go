package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TierConfig holds the credential for one access tier.
type TierConfig struct {
	PasswordHash string `yaml:"password_hash"`
}

// AuthConfig holds all authentication configuration for the application.
// Two tiers exist: "viewer" (read the schedule) and "admin" (edit it).
type AuthConfig struct {
	JWTSecret    string                `yaml:"jwt_secret"`
	TokenTTLMins int                   `yaml:"token_ttl_mins"`
	Tiers        map[string]TierConfig `yaml:"tiers"`
}

// LoadAuthConfig loads tier definitions from a YAML file, with secrets
// overridable from the environment.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	if configPath == "" {
		configPath = "config/auth.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read auth config: %w", err)
	}

	var config AuthConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse auth config: %w", err)
	}

	// Environment overrides for sensitive data
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWTSecret = secret
	}
	if hash := os.Getenv("SITE_PASSWORD_HASH"); hash != "" {
		tier := config.Tiers[RoleViewer]
		tier.PasswordHash = hash
		setTier(&config, RoleViewer, tier)
	}
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		tier := config.Tiers[RoleAdmin]
		tier.PasswordHash = hash
		setTier(&config, RoleAdmin, tier)
	}

	if config.TokenTTLMins <= 0 {
		config.TokenTTLMins = 720
	}

	return &config, nil
}

func setTier(config *AuthConfig, role string, tier TierConfig) {
	if config.Tiers == nil {
		config.Tiers = map[string]TierConfig{}
	}
	config.Tiers[role] = tier
}

// ValidateConfig checks that both tiers are usable.
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	for _, role := range []string{RoleViewer, RoleAdmin} {
		tier, ok := c.Tiers[role]
		if !ok || tier.PasswordHash == "" {
			return fmt.Errorf("tier %q needs a password_hash", role)
		}
	}
	return nil
}
