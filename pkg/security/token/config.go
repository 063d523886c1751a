package token

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Enabled toggles token validation. When disabled, a noop validator
	// resolving a fixed local identity is used (local development only).
	Enabled *bool `mapstructure:"enabled"`

	// PublicKey is the hex-encoded 32-byte Ed25519 public key of the
	// auth-service token issuer.
	PublicKey string `mapstructure:"public-key"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if sub := v.Sub("token"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load token config: %w", err)
		}
	}

	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if *cfg.Enabled && cfg.PublicKey == "" {
		return cfg, fmt.Errorf("token.public-key is required when token validation is enabled")
	}
	return cfg, nil
}
